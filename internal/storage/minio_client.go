package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"socialhub/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	GetImageURL(ctx context.Context, objectName string) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region}); err != nil {
			return nil, fmt.Errorf("ошибка создания бакета: %w", err)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// UploadImage кладёт объект под случайным ключом и возвращает имя объекта
// и подписанный URL с ограниченным сроком действия
func (m *MinIOClient) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, string, error) {
	now := time.Now()
	objectName := fmt.Sprintf("posts/%d/%02d/%s", now.Year(), now.Month(), uuid.New().String())

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	imageURL, err := m.GetImageURL(ctx, objectName)
	if err != nil {
		return "", "", err
	}

	return objectName, imageURL, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) GetImageURL(ctx context.Context, objectName string) (string, error) {
	signedURL, err := m.client.PresignedGetObject(ctx, m.cfg.MinIO.BucketName, objectName, m.cfg.MinIO.URLExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("ошибка создания подписанного URL: %w", err)
	}
	return signedURL.String(), nil
}
