package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"socialhub/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByName(ctx context.Context, firstName, lastName string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type PostRepository interface {
	CreateWithMentions(ctx context.Context, post *models.Post, mentionedUserIDs []string) error
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID string) error
}

type MentionRepository interface {
	GetByPostID(ctx context.Context, postID string) ([]models.Mention, error)
	GetByMentionedUserID(ctx context.Context, userID string) ([]models.Mention, error)
}

type NominationRepository interface {
	Create(ctx context.Context, nomination *models.Nomination) error
	GetAll(ctx context.Context) ([]models.Nomination, error)
	GetByID(ctx context.Context, nominationID string) (*models.Nomination, error)
	HasVoted(ctx context.Context, userID, nominationID string) (bool, error)
	CreateVote(ctx context.Context, vote *models.NominationVote) error
	TopNominatedUser(ctx context.Context) (*models.TopNominatedUser, error)
}

type Repository struct {
	User       UserRepository
	Post       PostRepository
	Comment    CommentRepository
	Mention    MentionRepository
	Nomination NominationRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Post:       NewPostRepository(db),
		Comment:    NewCommentRepository(db),
		Mention:    NewMentionRepository(db),
		Nomination: NewNominationRepository(db),
	}
}

// ── формы запросов, которыми обмениваются хендлеры и сервисы ──

type CreateUserRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

type UpdateUserRequest struct {
	UserID         string `json:"userId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

// PatchUserRequest — частичное обновление: затираются только переданные поля
type PatchUserRequest struct {
	UserID         string  `json:"userId"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Role           *string `json:"role"`
	ProfilePicture *string `json:"profilePicture"`
}

type CreatePostRequest struct {
	UserID      string `json:"userId"`
	Description string `json:"description"`
}

type UpdatePostRequest struct {
	PostID      string   `json:"postId"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	LikeCount   int      `json:"likeCount"`
	PinnedPost  bool     `json:"pinnedPost"`
}

type PatchPostRequest struct {
	PostID      string    `json:"postId"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	LikeCount   *int      `json:"likeCount"`
	PinnedPost  *bool     `json:"pinnedPost"`
}

type CreateCommentRequest struct {
	PostID      string `json:"postId"`
	UserID      string `json:"userId"`
	Description string `json:"description"`
}

type UpdateCommentRequest struct {
	CommentID   string `json:"commentId"`
	Description string `json:"description"`
}

type CreateNominationRequest struct {
	NominationType         string    `json:"nominationType"`
	Description            string    `json:"description"`
	LastNominationDay      time.Time `json:"lastNominationDay"`
	WinnerAnnouncementDate time.Time `json:"winnerAnnouncementDate"`
}

type VoteRequest struct {
	UserID          string `json:"userId"`
	NominatedUserID string `json:"nominatedUserId"`
	NominationID    string `json:"nominationId"`
}
