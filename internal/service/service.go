package service

import (
	"eventblog/internal/config"
	"eventblog/internal/repository"
	"eventblog/internal/storage"
)

type Service struct {
	Post   PostService
	Media  MediaService
	Tables TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	return &Service{
		Post:   NewPostService(rep.Post),
		Media:  NewMediaService(store, cfg),
		Tables: NewTablesService(rep.Tables),
	}
}
