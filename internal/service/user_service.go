package service

import (
	"context"

	"socialhub/internal/config"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

type UserService interface {
	CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error)
	PatchUser(ctx context.Context, req repository.PatchUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error
	GetUserMentions(ctx context.Context, userID string) ([]models.Mention, error)
}

type userService struct {
	userRepo    repository.UserRepository
	mentionRepo repository.MentionRepository
	cfg         *config.Config
}

func NewUserService(userRepo repository.UserRepository, mentionRepo repository.MentionRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo:    userRepo,
		mentionRepo: mentionRepo,
		cfg:         cfg,
	}
}

func (s *userService) CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           role,
		ProfilePicture: req.ProfilePicture,
	}

	if err := s.userRepo.Create(ctx, user, req.Password); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// UpdateUser - полная замена изменяемых полей профиля
func (s *userService) UpdateUser(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Role = req.Role
	user.ProfilePicture = req.ProfilePicture

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// PatchUser затирает только переданные поля, остальные не трогает
func (s *userService) PatchUser(ctx context.Context, req repository.PatchUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.Delete(ctx, userID)
}

// GetUserMentions - в каких постах пользователя упомянули
func (s *userService) GetUserMentions(ctx context.Context, userID string) ([]models.Mention, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.mentionRepo.GetByMentionedUserID(ctx, userID)
}
