package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"eventblog/internal/config"
)

// MinIOClient is the object-storage driver, selected with STORAGE_DRIVER=minio.
type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

func (m *MinIOClient) Save(ctx context.Context, name string, file io.Reader, size int64, contentType string) (int64, error) {
	info, err := m.client.PutObject(ctx, m.config.MinIO.BucketName, name, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return 0, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return info.Size, nil
}

func (m *MinIOClient) Read(ctx context.Context, relPath string) ([]byte, error) {
	if strings.Contains(relPath, "..") {
		return nil, ErrPathOutsideRoot
	}

	object, err := m.client.GetObject(ctx, m.config.MinIO.BucketName, relPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, ErrFileNotFound
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, ErrFileNotFound
	}

	return data, nil
}
