package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialhub/cmd/app"
	"socialhub/internal/config"
	handlers "socialhub/internal/handler"
	"socialhub/internal/logger"
	"socialhub/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	zapLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer zapLog.Sync()

	if cfg.JWTSecretKey == "" {
		zapLog.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services, err := app.App(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("Ошибка сборки приложения", zap.Error(err))
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg, zapLog)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	api.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", handler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/email/{email}", handler.GetUserByEmail).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", handler.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", handler.PatchUser).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id}", handler.DeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/mentions", handler.GetUserMentions).Methods(http.MethodGet)

	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", handler.PatchPost).Methods(http.MethodPatch)
	api.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/upload", handler.UploadPhotos).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/mentions", handler.GetPostMentions).Methods(http.MethodGet)

	api.HandleFunc("/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", handler.GetComment).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}", handler.UpdateComment).Methods(http.MethodPut)
	api.HandleFunc("/comments/{id}", handler.PatchComment).Methods(http.MethodPatch)
	api.HandleFunc("/comments/{id}", handler.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/nominations", handler.GetNominations).Methods(http.MethodGet)
	api.Handle("/nominations",
		middleware.RoleMiddleware("admin")(http.HandlerFunc(handler.CreateNomination))).Methods(http.MethodPost)
	api.HandleFunc("/nominations/vote", handler.Vote).Methods(http.MethodPost)
	api.HandleFunc("/nominations/vote/top-nominated-user", handler.TopNominatedUser).Methods(http.MethodGet)

	// порядок обертывания: изнутри наружу, поэтому CORS должен идти после Auth,
	// чтобы preflight-запросы не упирались в проверку токена
	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(zapLog),
		middleware.RecoveryMiddleware(zapLog),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	zapLog.Info("Сервер запущен",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.String("db", cfg.DB.DbNAME),
	)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		zapLog.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
