package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps uploads in a single flat directory on disk. Filenames
// are randomized by the media service and never reused, so files are treated
// as immutable once written.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Save(ctx context.Context, name string, file io.Reader, size int64, contentType string) (int64, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create upload directory: %w", err)
	}

	path, err := s.resolve(name)
	if err != nil {
		return 0, err
	}

	// whole-buffer write; uploads are small and never streamed
	data, err := io.ReadAll(file)
	if err != nil {
		return 0, fmt.Errorf("failed to read upload: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", name, err)
	}

	return int64(len(data)), nil
}

// Read collapses every read failure into ErrFileNotFound so callers cannot
// distinguish missing files from unreadable ones.
func (s *LocalStorage) Read(ctx context.Context, relPath string) ([]byte, error) {
	path, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrFileNotFound
	}

	return data, nil
}

// resolve joins relPath onto the root and verifies the canonicalized result
// is still contained inside it.
func (s *LocalStorage) resolve(relPath string) (string, error) {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve upload directory: %w", err)
	}

	path := filepath.Join(root, filepath.FromSlash(relPath))
	if !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", ErrPathOutsideRoot
	}

	return path, nil
}
