package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialhub/internal/apperrors"
	"socialhub/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// CreateWithMentions создаёт пост, записи упоминаний и инкременты счётчиков
// упомянутых пользователей в одной транзакции. Любая ошибка откатывает всё.
func (r *PostRepositoryImpl) CreateWithMentions(ctx context.Context, post *models.Post, mentionedUserIDs []string) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.Images == nil {
		post.Images = models.JSONList{}
	}
	if post.Hashtags == nil {
		post.Hashtags = models.JSONList{}
	}
	if post.MentionedUsers == nil {
		post.MentionedUsers = models.JSONList{}
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Internal("ошибка при открытии транзакции", err)
	}
	defer tx.Rollback()

	postQuery := `
		INSERT INTO posts (post_id, user_id, description, images, like_count, pinned_post,
			hashtags, mentioned_users, created_at, updated_at)
		VALUES (:post_id, :user_id, :description, :images, :like_count, :pinned_post,
			:hashtags, :mentioned_users, :created_at, :updated_at)
	`

	if _, err := tx.NamedExecContext(ctx, postQuery, post); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFound(fmt.Sprintf("пользователь с ID %s не найден", post.UserID))
		}
		return apperrors.CreationFailed("ошибка при создании поста", err)
	}

	mentionQuery := `
		INSERT INTO mentions (mention_id, post_id, mentioned_user_id, created_at)
		VALUES (:mention_id, :post_id, :mentioned_user_id, :created_at)
	`

	for _, userID := range mentionedUserIDs {
		mention := models.Mention{
			MentionID:       uuid.New().String(),
			PostID:          post.PostID,
			MentionedUserID: userID,
			CreatedAt:       now,
		}

		if _, err := tx.NamedExecContext(ctx, mentionQuery, &mention); err != nil {
			return apperrors.CreationFailed("ошибка при создании упоминания", err)
		}

		if _, err := tx.ExecContext(ctx, `UPDATE users SET mention_count = mention_count + 1 WHERE user_id = $1`, userID); err != nil {
			return apperrors.Internal("ошибка при обновлении счетчика упоминаний", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Internal("ошибка при фиксации транзакции", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts ORDER BY pinned_post DESC, created_at DESC`

	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, apperrors.Internal("ошибка при получении постов", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("пост с ID %s не найден", postID))
		}
		return nil, apperrors.Internal("ошибка при получении поста", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &posts, query, userID); err != nil {
		return nil, apperrors.Internal("ошибка при получении постов пользователя", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			description = :description,
			images = :images,
			like_count = :like_count,
			pinned_post = :pinned_post,
			hashtags = :hashtags,
			mentioned_users = :mentioned_users,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	post.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return apperrors.Internal("ошибка при обновлении поста", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("ошибка при проверке обновленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("пост с ID %s не найден", post.PostID))
	}

	return nil
}

// Delete удаляет пост; комментарии и упоминания убирает каскад внешних ключей
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return apperrors.Internal("ошибка при удалении поста", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("ошибка при проверке удаленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("пост с ID %s не найден", postID))
	}

	return nil
}
