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

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments (comment_id, post_id, user_id, description, created_at, updated_at)
		VALUES (:comment_id, :post_id, :user_id, :description, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFound("пост или пользователь комментария не найден")
		}
		return apperrors.CreationFailed("ошибка при создании комментария", err)
	}

	return nil
}

func (r *commentRepository) GetAll(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment

	query := `SELECT * FROM comments ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &comments, query); err != nil {
		return nil, apperrors.Internal("ошибка при получении комментариев", err)
	}

	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	var comment models.Comment

	query := `SELECT * FROM comments WHERE comment_id = $1`

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("комментарий с ID %s не найден", commentID))
		}
		return nil, apperrors.Internal("ошибка при получении комментария", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment

	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, apperrors.Internal("ошибка при получении комментариев поста", err)
	}

	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET description = :description, updated_at = :updated_at
		WHERE comment_id = :comment_id
	`

	comment.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return apperrors.Internal("ошибка при обновлении комментария", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("ошибка при проверке обновленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("комментарий с ID %s не найден", comment.CommentID))
	}

	return nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return apperrors.Internal("ошибка при удалении комментария", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("ошибка при проверке удаленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("комментарий с ID %s не найден", commentID))
	}

	return nil
}
