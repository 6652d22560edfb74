package app

import (
	"go.uber.org/zap"

	"socialhub/internal/config"
	"socialhub/internal/database"
	"socialhub/internal/repository"
	"socialhub/internal/service"
	"socialhub/internal/storage"
)

// App собирает зависимости приложения: БД, MinIO, репозитории, сервисы
func App(cfg *config.Config, log *zap.Logger) (*database.DB, *repository.Repository, *service.Service, error) {
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		db.CloseDB()
		return nil, nil, nil, err
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services, nil
}
