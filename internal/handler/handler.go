package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"socialhub/internal/config"
	"socialhub/internal/database"
	"socialhub/internal/service"
)

type Handlers struct {
	Services *service.Service
	DB       *database.DB
	Cfg      *config.Config
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewHandlers(services *service.Service, db *database.DB, cfg *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		Services: services,
		DB:       db,
		Cfg:      cfg,
		Validate: validator.New(),
		Log:      log,
	}
}

// данные пользователя кладёт в контекст auth-middleware

func contextUserID(r *http.Request) string {
	userID, _ := r.Context().Value("userID").(string)
	return userID
}

func contextRole(r *http.Request) string {
	role, _ := r.Context().Value("role").(string)
	return role
}
