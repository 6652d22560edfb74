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

type nominationRepository struct {
	db *sqlx.DB
}

func NewNominationRepository(db *sqlx.DB) NominationRepository {
	return &nominationRepository{db: db}
}

func (r *nominationRepository) Create(ctx context.Context, nomination *models.Nomination) error {
	if nomination.NominationID == "" {
		nomination.NominationID = uuid.New().String()
	}

	nomination.CreatedAt = time.Now()

	query := `
		INSERT INTO nominations (nomination_id, nomination_type, photo_url, description,
			last_nomination_day, winner_announcement_date, created_at)
		VALUES (:nomination_id, :nomination_type, :photo_url, :description,
			:last_nomination_day, :winner_announcement_date, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, nomination); err != nil {
		return apperrors.CreationFailed("ошибка при создании номинации", err)
	}

	return nil
}

func (r *nominationRepository) GetAll(ctx context.Context) ([]models.Nomination, error) {
	var nominations []models.Nomination

	query := `SELECT * FROM nominations ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &nominations, query); err != nil {
		return nil, apperrors.Internal("ошибка при получении номинаций", err)
	}

	return nominations, nil
}

func (r *nominationRepository) GetByID(ctx context.Context, nominationID string) (*models.Nomination, error) {
	var nomination models.Nomination

	query := `SELECT * FROM nominations WHERE nomination_id = $1`

	err := r.db.GetContext(ctx, &nomination, query, nominationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("номинация с ID %s не найдена", nominationID))
		}
		return nil, apperrors.Internal("ошибка при получении номинации", err)
	}

	return &nomination, nil
}

func (r *nominationRepository) HasVoted(ctx context.Context, userID, nominationID string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM nomination_votes WHERE user_id = $1 AND nomination_id = $2`

	if err := r.db.GetContext(ctx, &count, query, userID, nominationID); err != nil {
		return false, apperrors.Internal("ошибка при проверке голоса", err)
	}

	return count > 0, nil
}

// CreateVote вставляет голос. Повторный голос в той же номинации отсекает
// уникальный индекс (user_id, nomination_id) - проверка в сервисе только даёт
// дружелюбную ошибку раньше, гонку закрывает именно индекс.
func (r *nominationRepository) CreateVote(ctx context.Context, vote *models.NominationVote) error {
	if vote.VoteID == "" {
		vote.VoteID = uuid.New().String()
	}

	vote.CreatedAt = time.Now()

	query := `
		INSERT INTO nomination_votes (vote_id, user_id, nominated_user_id, nomination_id, created_at)
		VALUES (:vote_id, :user_id, :nominated_user_id, :nomination_id, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, vote); err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("пользователь уже голосовал в этой номинации")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NotFound("номинация или пользователь не найдены")
		}
		return apperrors.CreationFailed("ошибка при создании голоса", err)
	}

	return nil
}

func (r *nominationRepository) TopNominatedUser(ctx context.Context) (*models.TopNominatedUser, error) {
	var top models.TopNominatedUser

	// при равенстве голосов побеждает меньший user_id - так результат детерминирован
	query := `
		SELECT u.user_id, u.first_name, u.last_name, u.email, u.profile_picture,
			COUNT(v.vote_id) AS votes
		FROM nomination_votes v
		JOIN users u ON u.user_id = v.nominated_user_id
		GROUP BY u.user_id, u.first_name, u.last_name, u.email, u.profile_picture
		ORDER BY votes DESC, u.user_id
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &top, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("голосов пока нет")
		}
		return nil, apperrors.Internal("ошибка при подсчете голосов", err)
	}

	return &top, nil
}
