package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"socialhub/internal/apperrors"
	"socialhub/internal/config"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Signup(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, apperrors.AlreadyExists(fmt.Sprintf("пользователь с email %s уже существует", req.Email))
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	user := &models.User{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Email:                  req.Email,
		Role:                   role,
		ProfilePicture:         req.ProfilePicture,
		RefreshToken:           refreshToken,
		RefreshTokenExpiryTime: refreshTokenExpiry,
	}

	if err := s.userRepo.Create(ctx, user, req.Password); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", apperrors.Unauthorized("неверный email или пароль")
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, refreshToken, refreshTokenExpiry); err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}

	newRefreshToken, refreshTokenExpiry := s.generateRefreshToken()

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, newRefreshToken, refreshTokenExpiry); err != nil {
		return nil, "", "", err
	}

	return user, accessToken, newRefreshToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.UserID,
		"email":  user.Email,
		"role":   user.Role,
		"exp":    time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", apperrors.Internal("ошибка подписи токена", err)
	}

	return tokenString, nil
}

// refresh token - непрозрачная строка, живёт только в БД
func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), time.Now().Add(s.cfg.RefreshTokenDuration)
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, apperrors.Unauthorized("недействительный токен")
	}

	if !token.Valid {
		return nil, apperrors.Unauthorized("недействительный токен")
	}

	return token, nil
}

func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Unauthorized("неверный формат claims")
	}

	userID, ok1 := claims["userId"].(string)
	email, ok2 := claims["email"].(string)
	role, ok3 := claims["role"].(string)
	if !ok1 || !ok2 || !ok3 {
		return nil, apperrors.Unauthorized("неверные данные в токене")
	}

	user := &models.User{
		UserID: userID,
		Email:  email,
		Role:   role,
	}

	return user, nil
}
