package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"eventblog/internal/models"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrSlugTaken    = errors.New("slug already exists")
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	ListSummaries(ctx context.Context) ([]models.PostSummary, error)
	ListSummariesExcept(ctx context.Context, slug string) ([]models.PostSummary, error)
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	Post   PostRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:   NewPostRepository(db),
		Tables: NewTablesRepository(db),
	}
}
