package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"socialhub/internal/repository"
	"socialhub/internal/service"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UpdatePostBody struct {
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images"`
	LikeCount   int      `json:"likeCount" validate:"min=0"`
	PinnedPost  bool     `json:"pinnedPost"`
}

type PatchPostBody struct {
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	LikeCount   *int      `json:"likeCount"`
	PinnedPost  *bool     `json:"pinnedPost"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if userID := r.URL.Query().Get("userId"); userID != "" {
		posts, err := h.Services.Post.GetPostsByUser(r.Context(), userID)
		if err != nil {
			h.handleError(w, err)
			return
		}
		WriteSuccess(w, http.StatusOK, "Посты получены", posts)
		return
	}

	posts, err := h.Services.Post.GetPosts(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Посты получены", posts)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.Services.Post.GetPost(r.Context(), postID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пост получен", post)
}

// CreatePost принимает либо multipart-форму с полем description и файлами images,
// либо чистый JSON без вложений
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID := contextUserID(r)
	if userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var description string
	var files []service.UploadFile

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var ok bool
		description, files, ok = h.parseUploadForm(w, r)
		if !ok {
			return
		}
		defer closeUploadFiles(files)
	} else {
		var req struct {
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
			return
		}
		description = req.Description
	}

	post, err := h.Services.Post.CreatePost(r.Context(), repository.CreatePostRequest{
		UserID:      userID,
		Description: description,
	}, files)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "Пост успешно создан", post)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req UpdatePostBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	post, err := h.Services.Post.UpdatePost(r.Context(), repository.UpdatePostRequest{
		PostID:      postID,
		Description: req.Description,
		Images:      req.Images,
		LikeCount:   req.LikeCount,
		PinnedPost:  req.PinnedPost,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пост успешно обновлен", post)
}

func (h *Handlers) PatchPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req PatchPostBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	post, err := h.Services.Post.PatchPost(r.Context(), repository.PatchPostRequest{
		PostID:      postID,
		Description: req.Description,
		Images:      req.Images,
		LikeCount:   req.LikeCount,
		PinnedPost:  req.PinnedPost,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пост успешно обновлен", post)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.Services.Post.DeletePost(r.Context(), postID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пост успешно удален", nil)
}

func (h *Handlers) GetPostMentions(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	mentions, err := h.Services.Post.GetPostMentions(r.Context(), postID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Упоминания поста получены", mentions)
}

// UploadPhotos добавляет изображения к уже существующему посту
func (h *Handlers) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	_, files, ok := h.parseUploadForm(w, r)
	if !ok {
		return
	}
	defer closeUploadFiles(files)

	if len(files) == 0 {
		WriteError(w, "Не передано ни одного файла", http.StatusBadRequest)
		return
	}

	post, err := h.Services.Post.UploadPhotos(r.Context(), postID, files)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Изображения успешно загружены", post)
}

func (h *Handlers) parseUploadForm(w http.ResponseWriter, r *http.Request) (string, []service.UploadFile, bool) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		}
		return "", nil, false
	}

	description := r.FormValue("description")

	var files []service.UploadFile
	if r.MultipartForm != nil {
		for _, fileHeader := range r.MultipartForm.File["images"] {
			contentType := fileHeader.Header.Get("Content-Type")
			if !allowedImageTypes[contentType] {
				closeUploadFiles(files)
				WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
				return "", nil, false
			}

			file, err := fileHeader.Open()
			if err != nil {
				closeUploadFiles(files)
				WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
				return "", nil, false
			}

			files = append(files, service.UploadFile{
				Name:        fileHeader.Filename,
				ContentType: contentType,
				Content:     file,
			})
		}
	}

	return description, files, true
}

func closeUploadFiles(files []service.UploadFile) {
	for _, f := range files {
		if closer, ok := f.Content.(interface{ Close() error }); ok {
			closer.Close()
		}
	}
}
