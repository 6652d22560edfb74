package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"socialhub/internal/apperrors"
	"socialhub/internal/models"
)

type mentionRepository struct {
	db *sqlx.DB
}

func NewMentionRepository(db *sqlx.DB) MentionRepository {
	return &mentionRepository{db: db}
}

// записи создаются только внутри транзакции создания поста,
// поэтому здесь остались одни выборки

func (r *mentionRepository) GetByPostID(ctx context.Context, postID string) ([]models.Mention, error) {
	var mentions []models.Mention

	query := `SELECT * FROM mentions WHERE post_id = $1 ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &mentions, query, postID); err != nil {
		return nil, apperrors.Internal("ошибка при получении упоминаний поста", err)
	}

	return mentions, nil
}

func (r *mentionRepository) GetByMentionedUserID(ctx context.Context, userID string) ([]models.Mention, error) {
	var mentions []models.Mention

	query := `SELECT * FROM mentions WHERE mentioned_user_id = $1 ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &mentions, query, userID); err != nil {
		return nil, apperrors.Internal("ошибка при получении упоминаний пользователя", err)
	}

	return mentions, nil
}
