package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialhub/internal/apperrors"
	"socialhub/internal/config"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

func newAuthService(userRepo *MockUserRepository) AuthService {
	return NewAuthService(userRepo, &config.Config{
		Env:                  "test",
		JWTSecretKey:         "test-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("Успешная регистрация с ролью по умолчанию", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", mock.Anything, "ivan@example.com").
			Return(nil, apperrors.NotFound("пользователь с email ivan@example.com не найден"))
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User"), "secret123").Return(nil)

		user, err := svc.Signup(context.Background(), repository.CreateUserRequest{
			FirstName: "Иван",
			Email:     "ivan@example.com",
			Password:  "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "user", user.Role)
		assert.NotEmpty(t, user.RefreshToken)
	})

	t.Run("Email уже занят", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", mock.Anything, "ivan@example.com").
			Return(&models.User{UserID: "u1", Email: "ivan@example.com"}, nil)

		user, err := svc.Signup(context.Background(), repository.CreateUserRequest{
			FirstName: "Иван",
			Email:     "ivan@example.com",
			Password:  "secret123",
		})
		assert.Nil(t, user)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyExists))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("Успешный вход выдает обе подписи", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		user := &models.User{UserID: "u1", Email: "ivan@example.com", Role: "user"}
		userRepo.On("VerifyPassword", mock.Anything, "ivan@example.com", "secret123").Return(user, nil)
		userRepo.On("UpdateRefreshToken", mock.Anything, "u1", mock.Anything, mock.Anything).Return(nil)

		loggedIn, accessToken, refreshToken, err := svc.Login(context.Background(), "ivan@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "u1", loggedIn.UserID)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)

		// access token подписан нашим секретом и несет claims пользователя
		parsed, err := svc.ValidateToken(accessToken)
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "u1", claims["userId"])
		assert.Equal(t, "user", claims["role"])
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		userRepo.On("VerifyPassword", mock.Anything, "ivan@example.com", "wrong").
			Return(nil, apperrors.Unauthorized("неверный пароль"))

		user, accessToken, refreshToken, err := svc.Login(context.Background(), "ivan@example.com", "wrong")
		assert.Nil(t, user)
		assert.Empty(t, accessToken)
		assert.Empty(t, refreshToken)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	})
}

func TestAuthService_RefreshTokens(t *testing.T) {
	t.Run("Refresh token ротируется", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		user := &models.User{UserID: "u1", Email: "ivan@example.com", Role: "user", RefreshToken: "old-token"}
		userRepo.On("GetByRefreshToken", mock.Anything, "old-token").Return(user, nil)
		userRepo.On("UpdateRefreshToken", mock.Anything, "u1", mock.Anything, mock.Anything).Return(nil)

		_, accessToken, newRefreshToken, err := svc.RefreshTokens(context.Background(), "old-token")
		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEqual(t, "old-token", newRefreshToken)
	})

	t.Run("Просроченный refresh token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		userRepo.On("GetByRefreshToken", mock.Anything, "expired").
			Return(nil, apperrors.Unauthorized("недействительный или просроченный refresh token"))

		_, _, _, err := svc.RefreshTokens(context.Background(), "expired")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	t.Run("Чужая подпись отклоняется", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userId": "u1",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := foreign.SignedString([]byte("другой-секрет"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(tokenString)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	})

	t.Run("Мусор вместо токена", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newAuthService(userRepo)

		_, err := svc.ValidateToken("not-a-token")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	})
}
