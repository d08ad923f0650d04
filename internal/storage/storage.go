package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrPathOutsideRoot = errors.New("path resolves outside storage root")
)

// Storage abstracts the upload backend so the media service behaves the same
// over local disk and object storage. Save returns the number of bytes
// written; Read returns the whole file.
type Storage interface {
	Save(ctx context.Context, name string, file io.Reader, size int64, contentType string) (int64, error)
	Read(ctx context.Context, relPath string) ([]byte, error)
}
