package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"eventblog/internal/service"
	"eventblog/internal/storage"
)

func (h *Handlers) UploadFile(w http.ResponseWriter, r *http.Request) {
	// the argument caps in-memory buffering, not upload size
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadMemory); err != nil {
		WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// the declared media type is trusted; file bytes are not inspected
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		WriteError(w, "only image files are allowed", http.StatusBadRequest)
		return
	}

	result, err := h.MediaService.Upload(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

func (h *Handlers) ServeMedia(w http.ResponseWriter, r *http.Request) {
	relPath := mux.Vars(r)["path"]

	data, contentType, err := h.MediaService.Fetch(r.Context(), relPath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMediaPath), errors.Is(err, storage.ErrPathOutsideRoot):
			WriteError(w, "invalid path", http.StatusBadRequest)
		case errors.Is(err, storage.ErrFileNotFound):
			WriteError(w, "not found", http.StatusNotFound)
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// filenames are never reused, so served files are permanently immutable
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
