package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"eventblog/internal/models"
	"eventblog/internal/repository"
)

type ContentResponse struct {
	Posts []models.PostSummary `json:"posts"`
}

type ContentDetailResponse struct {
	Post     *models.PostDetail   `json:"post"`
	ReadMore []models.PostSummary `json:"readMore"`
}

// GetContent is the page-data loader for the post list: every post, newest
// first, summary projection with normalized speakers.
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []models.PostSummary{}
	}

	WriteSuccess(w, ContentResponse{Posts: posts}, http.StatusOK)
}

// GetContentBySlug is the page-data loader for a single post plus its
// read-more list.
func (h *Handlers) GetContentBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, readMore, err := h.PostService.GetPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "post not found", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if readMore == nil {
		readMore = []models.PostSummary{}
	}

	WriteSuccess(w, ContentDetailResponse{Post: post, ReadMore: readMore}, http.StatusOK)
}
