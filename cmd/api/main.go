package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"eventblog/cmd/app"
	"eventblog/internal/config"
	handlers "eventblog/internal/handler"
	"eventblog/internal/middleware"
)

func main() {
	// setting up config and logger
	cfg := config.LoadConfig()
	logger := config.NewLogger()

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	// setting up routes
	r := mux.NewRouter()
	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/upload", handler.UploadFile).Methods(http.MethodPost)
	r.HandleFunc("/media/{path:.*}", handler.ServeMedia).Methods(http.MethodGet)

	r.HandleFunc("/content", handler.GetContent).Methods(http.MethodGet)
	r.HandleFunc("/content/{slug}", handler.GetContentBySlug).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("server listening",
		"addr", addr,
		"database", cfg.DB.DbNAME,
		"storage", cfg.Storage.Driver,
	)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
