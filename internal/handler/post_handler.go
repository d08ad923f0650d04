package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx/types"

	"eventblog/internal/repository"
	"eventblog/internal/service"
)

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title      string          `json:"title" validate:"required"`
		Slug       string          `json:"slug"`
		Excerpt    *string         `json:"excerpt"`
		Content    json.RawMessage `json:"content" validate:"required"`
		EventImage *string         `json:"eventImage"`
		Speakers   json.RawMessage `json:"speakers"`
		CreatedAt  string          `json:"createdAt"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		WriteError(w, "title is required", http.StatusBadRequest)
		return
	}

	if !isStructuredDocument(req.Content) {
		WriteError(w, "content must be a structured document", http.StatusBadRequest)
		return
	}

	var createdAt *time.Time
	if req.CreatedAt != "" {
		parsed, err := parseTimestamp(req.CreatedAt)
		if err != nil {
			WriteError(w, "createdAt must be a valid timestamp", http.StatusBadRequest)
			return
		}
		createdAt = &parsed
	}

	serviceReq := service.CreatePostRequest{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    types.JSONText(req.Content),
		EventImage: req.EventImage,
		Speakers:   types.JSONText(req.Speakers),
		CreatedAt:  createdAt,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSlugTaken):
			WriteError(w, "slug already exists", http.StatusConflict)
		case errors.Is(err, service.ErrSlugRequired):
			WriteError(w, "slug is required", http.StatusBadRequest)
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

// isStructuredDocument accepts any JSON object or array; primitives and null
// are rejected. The document itself is never interpreted.
func isStructuredDocument(raw json.RawMessage) bool {
	var value any
	if len(raw) == 0 || json.Unmarshal(raw, &value) != nil {
		return false
	}

	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func parseTimestamp(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", value)
	}
	return parsed, err
}
