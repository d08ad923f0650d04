package app

import (
	"log"

	"eventblog/internal/config"
	"eventblog/internal/database"
	"eventblog/internal/repository"
	"eventblog/internal/service"
	"eventblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, repo, services
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case "minio":
		return storage.NewMinIOClient(cfg)
	default:
		return storage.NewLocalStorage(cfg.Storage.UploadDir), nil
	}
}
