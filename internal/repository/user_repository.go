package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"socialhub/internal/apperrors"
	"socialhub/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User, password string) error {
	// пароль пустой у аккаунтов, заведённых через Google
	if password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return apperrors.Internal("ошибка при хешировании пароля", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (user_id, first_name, last_name, email, password_hash, role,
			refresh_token, refresh_token_expiry_time, reset_token, google_id, profile_picture,
			mention_count, created_at, updated_at)
		VALUES (:user_id, :first_name, :last_name, :email, :password_hash, :role,
			:refresh_token, :refresh_token_expiry_time, :reset_token, :google_id, :profile_picture,
			:mention_count, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists(fmt.Sprintf("пользователь с email %s уже существует", user.Email))
		}
		return apperrors.CreationFailed("ошибка при создании пользователя", err)
	}

	return nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User

	query := `SELECT * FROM users ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, apperrors.Internal("ошибка при получении пользователей", err)
	}

	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("пользователь с ID %s не найден", userID))
		}
		return nil, apperrors.Internal("ошибка при получении пользователя", err)
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("пользователь с email %s не найден", email))
		}
		return nil, apperrors.Internal("ошибка при получении пользователя по email", err)
	}

	return &user, nil
}

// GetByName ищет пользователя по имени из @упоминания.
// Одно слово сравнивается только с first_name, два и больше - с парой имя+фамилия.
func (r *userRepository) GetByName(ctx context.Context, firstName, lastName string) (*models.User, error) {
	var user models.User
	var err error

	if lastName == "" {
		query := `SELECT * FROM users WHERE first_name = $1 LIMIT 1`
		err = r.db.GetContext(ctx, &user, query, firstName)
	} else {
		query := `SELECT * FROM users WHERE first_name = $1 AND last_name = $2 LIMIT 1`
		err = r.db.GetContext(ctx, &user, query, firstName, lastName)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("пользователь %s %s не найден", firstName, lastName))
		}
		return nil, apperrors.Internal("ошибка при поиске пользователя по имени", err)
	}

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET first_name = :first_name, last_name = :last_name, email = :email,
			role = :role, profile_picture = :profile_picture, updated_at = :updated_at
		WHERE user_id = :user_id
	`

	user.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists(fmt.Sprintf("пользователь с email %s уже существует", user.Email))
		}
		return apperrors.Internal("ошибка при обновлении пользователя", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("ошибка при проверке обновленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("пользователь с ID %s не найден", user.UserID))
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return apperrors.Internal("ошибка при удалении пользователя", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("ошибка при проверке удаленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("пользователь с ID %s не найден", userID))
	}

	return nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("неверный пароль")
	}

	return user, nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE user_id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, userID)
	if err != nil {
		return apperrors.Internal("ошибка при обновлении refresh token", err)
	}

	return nil
}

func (r *userRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	var user models.User

	query := `
		SELECT * FROM users
		WHERE refresh_token = $1
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &user, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Unauthorized("недействительный или просроченный refresh token")
		}
		return nil, apperrors.Internal("ошибка при получении пользователя по refresh token", err)
	}

	return &user, nil
}
