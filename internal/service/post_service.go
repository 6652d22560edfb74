package service

import (
	"context"
	"io"
	"strings"

	"socialhub/internal/apperrors"
	"socialhub/internal/config"
	"socialhub/internal/imageproc"
	"socialhub/internal/models"
	"socialhub/internal/repository"
	"socialhub/internal/storage"
	"socialhub/internal/textparse"
)

// UploadFile - файл из multipart-формы, ещё не обработанный
type UploadFile struct {
	Name        string
	ContentType string
	Content     io.Reader
}

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest, files []UploadFile) (*models.Post, error)
	GetPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error)
	PatchPost(ctx context.Context, req repository.PatchPostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	UploadPhotos(ctx context.Context, postID string, files []UploadFile) (*models.Post, error)
	GetPostMentions(ctx context.Context, postID string) ([]models.Mention, error)
}

type postService struct {
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	mentionRepo repository.MentionRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, mentionRepo repository.MentionRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		mentionRepo: mentionRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

type uploadedObject struct {
	objectName string
	url        string
}

// CreatePost - транзакционный сценарий создания поста:
// сначала грузим изображения в MinIO, затем в одной транзакции БД создаём пост,
// упоминания и счётчики. Если БД откатилась, уже загруженные объекты удаляем.
func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest, files []UploadFile) (*models.Post, error) {
	uploaded, err := p.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	hashtags := textparse.Hashtags(req.Description)
	mentionNames := textparse.Mentions(req.Description)

	// упоминания без подходящего пользователя молча отбрасываем
	mentionedIDs := make([]string, 0, len(mentionNames))
	mentionedUsers := make([]string, 0, len(mentionNames))
	for _, name := range mentionNames {
		user, err := p.resolveMention(ctx, name)
		if err != nil {
			continue
		}
		mentionedIDs = append(mentionedIDs, user.UserID)
		mentionedUsers = append(mentionedUsers, name)
	}

	images := make(models.JSONList, 0, len(uploaded))
	for _, obj := range uploaded {
		images = append(images, obj.url)
	}

	post := &models.Post{
		UserID:         req.UserID,
		Description:    req.Description,
		Images:         images,
		LikeCount:      0,
		PinnedPost:     false,
		Hashtags:       hashtags,
		MentionedUsers: mentionedUsers,
	}

	if err := p.postRepo.CreateWithMentions(ctx, post, mentionedIDs); err != nil {
		p.cleanupObjects(ctx, uploaded)
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return p.postRepo.GetByUserID(ctx, userID)
}

func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	post.Description = req.Description
	post.Images = req.Images
	post.LikeCount = req.LikeCount
	post.PinnedPost = req.PinnedPost

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) PatchPost(ctx context.Context, req repository.PatchPostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Images != nil {
		post.Images = *req.Images
	}
	if req.LikeCount != nil {
		post.LikeCount = *req.LikeCount
	}
	if req.PinnedPost != nil {
		post.PinnedPost = *req.PinnedPost
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	return p.postRepo.Delete(ctx, postID)
}

// UploadPhotos добавляет изображения к существующему посту
func (p *postService) UploadPhotos(ctx context.Context, postID string, files []UploadFile) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	uploaded, err := p.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	for _, obj := range uploaded {
		post.Images = append(post.Images, obj.url)
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		p.cleanupObjects(ctx, uploaded)
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPostMentions(ctx context.Context, postID string) ([]models.Mention, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return p.mentionRepo.GetByPostID(ctx, postID)
}

func (p *postService) uploadFiles(ctx context.Context, files []UploadFile) ([]uploadedObject, error) {
	uploaded := make([]uploadedObject, 0, len(files))

	for _, f := range files {
		processed, err := imageproc.Process(f.Content, f.ContentType)
		if err != nil {
			p.cleanupObjects(ctx, uploaded)
			return nil, apperrors.Internal("ошибка обработки изображения", err)
		}

		objectName, url, err := p.storage.UploadImage(ctx, f.Name, processed.Body, processed.Size, processed.ContentType)
		if err != nil {
			p.cleanupObjects(ctx, uploaded)
			return nil, apperrors.Internal("ошибка загрузки изображения", err)
		}

		uploaded = append(uploaded, uploadedObject{objectName: objectName, url: url})
	}

	return uploaded, nil
}

// компенсация по принципу "как получится": исходная ошибка важнее ошибок удаления
func (p *postService) cleanupObjects(ctx context.Context, uploaded []uploadedObject) {
	for _, obj := range uploaded {
		p.storage.DeleteImage(ctx, obj.objectName)
	}
}

func (p *postService) resolveMention(ctx context.Context, name string) (*models.User, error) {
	parts := strings.SplitN(name, " ", 2)

	firstName := parts[0]
	lastName := ""
	if len(parts) == 2 {
		lastName = parts[1]
	}

	return p.userRepo.GetByName(ctx, firstName, lastName)
}
