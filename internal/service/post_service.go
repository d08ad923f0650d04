package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx/types"

	"eventblog/internal/models"
	"eventblog/internal/repository"
)

var ErrSlugRequired = errors.New("slug is required")

type CreatePostRequest struct {
	Title      string
	Slug       string
	Excerpt    *string
	Content    types.JSONText
	EventImage *string
	Speakers   types.JSONText
	CreatedAt  *time.Time
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.PostSummary, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.PostDetail, []models.PostSummary, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CreatePost derives the slug when none is supplied and enforces uniqueness
// with an advisory pre-check. The UNIQUE constraint on the posts table covers
// the race between concurrent creations with the same slug.
func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, ErrSlugRequired
	}

	exists, err := p.postRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrSlugTaken
	}

	post := &models.Post{
		Slug:       slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		EventImage: req.EventImage,
		Speakers:   req.Speakers,
	}

	if req.CreatedAt != nil {
		post.CreatedAt = *req.CreatedAt
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	posts, err := p.postRepo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Speakers = models.ParseSpeakers(posts[i].RawSpeakers)
	}

	return posts, nil
}

func (p *postService) GetPostBySlug(ctx context.Context, slug string) (*models.PostDetail, []models.PostSummary, error) {
	post, err := p.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	readMore, err := p.postRepo.ListSummariesExcept(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	for i := range readMore {
		readMore[i].Speakers = models.ParseSpeakers(readMore[i].RawSpeakers)
	}

	detail := &models.PostDetail{
		PostID:     post.PostID,
		Slug:       post.Slug,
		Title:      post.Title,
		Excerpt:    post.Excerpt,
		Content:    post.Content,
		EventImage: post.EventImage,
		Speakers:   models.ParseSpeakers(post.Speakers),
		CreatedAt:  post.CreatedAt,
	}

	return detail, readMore, nil
}
