package service

import (
	"context"

	"socialhub/internal/models"
	"socialhub/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	GetComments(ctx context.Context, postID string) ([]models.Comment, error)
	GetComment(ctx context.Context, commentID string) (*models.Comment, error)
	UpdateComment(ctx context.Context, req repository.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment проверяет существование поста и автора перед вставкой
func (s *commentService) CreateComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:      req.PostID,
		UserID:      req.UserID,
		Description: req.Description,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if postID != "" {
		return s.commentRepo.GetByPostID(ctx, postID)
	}
	return s.commentRepo.GetAll(ctx)
}

func (s *commentService) GetComment(ctx context.Context, commentID string) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *commentService) UpdateComment(ctx context.Context, req repository.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	comment.Description = req.Description

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	return s.commentRepo.Delete(ctx, commentID)
}
