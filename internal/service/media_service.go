package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"eventblog/internal/config"
	"eventblog/internal/models"
	"eventblog/internal/storage"
)

var ErrInvalidMediaPath = errors.New("invalid media path")

type MediaService interface {
	Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (*models.UploadResult, error)
	Fetch(ctx context.Context, relPath string) ([]byte, string, error)
}

type mediaService struct {
	store storage.Storage
	cfg   *config.Config
}

func NewMediaService(store storage.Storage, cfg *config.Config) MediaService {
	return &mediaService{store: store, cfg: cfg}
}

// Upload stores the file under a collision-resistant generated name:
// millisecond timestamp, underscore, 24 random hex characters, safe extension.
func (m *mediaService) Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (*models.UploadResult, error) {
	ext := safeExt(fileName)
	if ext == "" {
		ext = ".bin"
	}

	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate file name: %w", err)
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext)

	written, err := m.store.Save(ctx, name, file, size, contentType)
	if err != nil {
		return nil, err
	}

	return &models.UploadResult{
		URL:      m.cfg.Storage.MediaPrefix + "/" + name,
		Filename: name,
		Size:     written,
		Mime:     contentType,
	}, nil
}

// Fetch rejects empty and traversal-bearing paths before touching storage and
// infers the content type from the extension alone.
func (m *mediaService) Fetch(ctx context.Context, relPath string) ([]byte, string, error) {
	if relPath == "" || strings.Contains(relPath, "..") {
		return nil, "", ErrInvalidMediaPath
	}

	data, err := m.store.Read(ctx, relPath)
	if err != nil {
		return nil, "", err
	}

	return data, ContentTypeByExt(filepath.Ext(relPath)), nil
}

// safeExt lowercases the original extension, strips anything outside
// [a-z0-9.], and refuses extensions longer than 8 characters including the
// dot.
func safeExt(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" || len(ext) > 8 {
		return ""
	}

	var b strings.Builder
	for _, r := range ext {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ContentTypeByExt maps a file extension to the served content type. No
// content sniffing; unknown extensions are served as opaque bytes.
func ContentTypeByExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
