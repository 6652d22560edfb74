package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"socialhub/internal/repository"
)

type CreateCommentBody struct {
	PostID      string `json:"postId" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateCommentBody struct {
	Description string `json:"description" validate:"required"`
}

type PatchCommentBody struct {
	Description *string `json:"description"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("postId")

	comments, err := h.Services.Comment.GetComments(r.Context(), postID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Комментарии получены", comments)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]

	comment, err := h.Services.Comment.GetComment(r.Context(), commentID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Комментарий получен", comment)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID := contextUserID(r)
	if userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreateCommentBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	comment, err := h.Services.Comment.CreateComment(r.Context(), repository.CreateCommentRequest{
		PostID:      req.PostID,
		UserID:      userID,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "Комментарий успешно создан", comment)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]

	var req UpdateCommentBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	comment, err := h.Services.Comment.UpdateComment(r.Context(), repository.UpdateCommentRequest{
		CommentID:   commentID,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Комментарий успешно обновлен", comment)
}

// PatchComment - частичное обновление; непереданные поля не трогаем
func (h *Handlers) PatchComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]

	var req PatchCommentBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Description == nil {
		comment, err := h.Services.Comment.GetComment(r.Context(), commentID)
		if err != nil {
			h.handleError(w, err)
			return
		}
		WriteSuccess(w, http.StatusOK, "Комментарий успешно обновлен", comment)
		return
	}

	comment, err := h.Services.Comment.UpdateComment(r.Context(), repository.UpdateCommentRequest{
		CommentID:   commentID,
		Description: *req.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Комментарий успешно обновлен", comment)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]

	if err := h.Services.Comment.DeleteComment(r.Context(), commentID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Комментарий успешно удален", nil)
}
