package handlers

import (
	"github.com/go-playground/validator/v10"

	"eventblog/internal/config"
	"eventblog/internal/repository"
	"eventblog/internal/service"
)

type Handlers struct {
	PostService   service.PostService
	PostRepo      repository.PostRepository
	MediaService  service.MediaService
	TablesService service.TablesService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		PostService:   service.Post,
		PostRepo:      repo.Post,
		MediaService:  service.Media,
		TablesService: service.Tables,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
