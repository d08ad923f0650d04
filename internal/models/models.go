package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Post is the persisted entity. Content is an opaque rich-text document tree
// stored and returned verbatim; Speakers is kept as raw JSON and normalized
// only when read back through the loaders.
type Post struct {
	PostID     string         `json:"id" db:"post_id"`
	Slug       string         `json:"slug" db:"slug"`
	Title      string         `json:"title" db:"title"`
	Excerpt    *string        `json:"excerpt" db:"excerpt"`
	Content    types.JSONText `json:"content" db:"content"`
	EventImage *string        `json:"eventImage" db:"event_image"`
	Speakers   types.JSONText `json:"speakers" db:"speakers"`
	CreatedAt  time.Time      `json:"createdAt" db:"created_at"`
}

// PostSummary is the projection used by the list loader and read-more lists.
type PostSummary struct {
	Slug        string         `json:"slug" db:"slug"`
	Title       string         `json:"title" db:"title"`
	Excerpt     *string        `json:"excerpt" db:"excerpt"`
	EventImage  *string        `json:"eventImage" db:"event_image"`
	Speakers    []Speaker      `json:"speakers" db:"-"`
	RawSpeakers types.JSONText `json:"-" db:"speakers"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}

// PostDetail is the full post with speakers already normalized.
type PostDetail struct {
	PostID     string         `json:"id"`
	Slug       string         `json:"slug"`
	Title      string         `json:"title"`
	Excerpt    *string        `json:"excerpt"`
	Content    types.JSONText `json:"content"`
	EventImage *string        `json:"eventImage"`
	Speakers   []Speaker      `json:"speakers"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type Speaker struct {
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Mime     string `json:"mime"`
}

// ParseSpeakers converts a loosely-typed JSON value read back from storage
// into a strict speaker list. Non-array input yields an empty list; elements
// that are not objects or have no usable name are dropped, order is preserved.
func ParseSpeakers(raw []byte) []Speaker {
	out := []Speaker{}

	var values []any
	if len(raw) == 0 || json.Unmarshal(raw, &values) != nil {
		return out
	}

	for _, v := range values {
		obj, ok := v.(map[string]any)
		if !ok {
			continue
		}

		name, _ := obj["name"].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		speaker := Speaker{Name: name}
		if photo, ok := obj["photo"].(string); ok {
			if photo = strings.TrimSpace(photo); photo != "" {
				speaker.Photo = photo
			}
		}

		out = append(out, speaker)
	}

	return out
}
