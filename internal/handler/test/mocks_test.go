package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"eventblog/internal/models"
	"eventblog/internal/service"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostSummary), args.Error(1)
}

func (m *MockPostService) GetPostBySlug(ctx context.Context, slug string) (*models.PostDetail, []models.PostSummary, error) {
	args := m.Called(ctx, slug)
	var detail *models.PostDetail
	if args.Get(0) != nil {
		detail = args.Get(0).(*models.PostDetail)
	}
	var readMore []models.PostSummary
	if args.Get(1) != nil {
		readMore = args.Get(1).([]models.PostSummary)
	}
	return detail, readMore, args.Error(2)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (*models.UploadResult, error) {
	args := m.Called(ctx, fileName, contentType, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadResult), args.Error(1)
}

func (m *MockMediaService) Fetch(ctx context.Context, relPath string) ([]byte, string, error) {
	args := m.Called(ctx, relPath)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ListSummaries(ctx context.Context) ([]models.PostSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostSummary), args.Error(1)
}

func (m *MockPostRepository) ListSummariesExcept(ctx context.Context, slug string) ([]models.PostSummary, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostSummary), args.Error(1)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetCountTablesBD() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type MockTablesRepository struct {
	mock.Mock
}

func (m *MockTablesRepository) CountTablesDB() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
