package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"eventblog/internal/models"
)

const summaryColumns = `slug, title, excerpt, event_image, speakers, created_at`

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// Create inserts the post and fills in the server-generated fields. The slug
// UNIQUE constraint is the final arbiter of uniqueness; a violation is
// reported as ErrSlugTaken.
func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, slug, title, excerpt, content, event_image, speakers, created_at)
        VALUES
        (:post_id, :slug, :title, :excerpt, :content, :event_image, :speakers, :created_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	if len(post.Speakers) == 0 {
		post.Speakers = types.JSONText("null")
	}

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := `
        SELECT post_id, slug, title, excerpt, content, event_image, speakers, created_at
        FROM posts
        WHERE slug = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT COUNT(*) FROM posts WHERE slug = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, slug)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}

	return count > 0, nil
}

func (r *PostRepositoryImpl) ListSummaries(ctx context.Context) ([]models.PostSummary, error) {
	query := `
        SELECT ` + summaryColumns + `
        FROM posts
        ORDER BY created_at DESC
    `

	var posts []models.PostSummary
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ListSummariesExcept(ctx context.Context, slug string) ([]models.PostSummary, error) {
	query := `
        SELECT ` + summaryColumns + `
        FROM posts
        WHERE slug <> $1
        ORDER BY created_at DESC
    `

	var posts []models.PostSummary
	err := r.db.SelectContext(ctx, &posts, query, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}
