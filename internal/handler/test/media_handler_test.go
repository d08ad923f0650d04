package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventblog/internal/config"
	handlers "eventblog/internal/handler"
	"eventblog/internal/models"
	"eventblog/internal/service"
	"eventblog/internal/storage"
)

// multipartFile builds a multipart body with a single part whose declared
// Content-Type is controllable.
func multipartFile(t *testing.T, field, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadFileHandler(t *testing.T) {
	mockMediaService := new(MockMediaService)
	mockMediaService.On("Upload", mock.Anything, "pic.png", "image/png", mock.Anything, mock.Anything).
		Return(&models.UploadResult{
			URL:      "/media/1715000000000_0123456789abcdef01234567.png",
			Filename: "1715000000000_0123456789abcdef01234567.png",
			Size:     4,
			Mime:     "image/png",
		}, nil)

	handler := newTestHandlers(new(MockPostService), mockMediaService)

	body, contentType := multipartFile(t, "file", "pic.png", "image/png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	handler.UploadFile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response models.UploadResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "/media/1715000000000_0123456789abcdef01234567.png", response.URL)
	assert.Equal(t, int64(4), response.Size)
	assert.Equal(t, "image/png", response.Mime)

	mockMediaService.AssertExpectations(t)
}

func TestUploadFileHandler_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		contentType string
	}{
		{"missing file field", "attachment", "image/png"},
		{"non-image declared type", "file", "application/pdf"},
		{"empty declared type", "file", "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMediaService := new(MockMediaService)
			handler := newTestHandlers(new(MockPostService), mockMediaService)

			body, contentType := multipartFile(t, tt.field, "doc.pdf", tt.contentType, []byte("data"))
			req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
			req.Header.Set("Content-Type", contentType)

			rr := httptest.NewRecorder()
			handler.UploadFile(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			mockMediaService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestServeMediaHandler_Traversal(t *testing.T) {
	mockMediaService := new(MockMediaService)
	mockMediaService.On("Fetch", mock.Anything, mock.Anything).
		Return(nil, "", service.ErrInvalidMediaPath)

	handler := newTestHandlers(new(MockPostService), mockMediaService)

	for _, p := range []string{"../etc/passwd", "a/../b", ".."} {
		req := httptest.NewRequest(http.MethodGet, "/media/x", nil)
		req = mux.SetURLVars(req, map[string]string{"path": p})

		rr := httptest.NewRecorder()
		handler.ServeMedia(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "path %q", p)
	}
}

func TestServeMediaHandler_NotFound(t *testing.T) {
	mockMediaService := new(MockMediaService)
	mockMediaService.On("Fetch", mock.Anything, "missing.png").
		Return(nil, "", storage.ErrFileNotFound)

	handler := newTestHandlers(new(MockPostService), mockMediaService)

	req := httptest.NewRequest(http.MethodGet, "/media/missing.png", nil)
	req = mux.SetURLVars(req, map[string]string{"path": "missing.png"})

	rr := httptest.NewRecorder()
	handler.ServeMedia(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// TestMediaRoundTrip uploads through the real media service and local driver,
// then fetches the returned URL and verifies byte-identical content plus
// headers.
func TestMediaRoundTrip(t *testing.T) {
	cfg := &config.Config{
		Storage:         config.Storage{Driver: "local", UploadDir: t.TempDir(), MediaPrefix: "/media"},
		MaxUploadMemory: 10 << 20,
	}

	mediaService := service.NewMediaService(storage.NewLocalStorage(cfg.Storage.UploadDir), cfg)
	handler := &handlers.Handlers{
		MediaService: mediaService,
		Cfg:          cfg,
		Validate:     validator.New(),
	}

	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x01, 0x02}

	body, contentType := multipartFile(t, "file", "cover.png", "image/png", content)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	handler.UploadFile(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var uploaded models.UploadResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &uploaded))
	assert.Equal(t, int64(len(content)), uploaded.Size)
	assert.Equal(t, "/media/"+uploaded.Filename, uploaded.URL)

	getReq := httptest.NewRequest(http.MethodGet, uploaded.URL, nil)
	getReq = mux.SetURLVars(getReq, map[string]string{"path": uploaded.Filename})

	getRR := httptest.NewRecorder()
	handler.ServeMedia(getRR, getReq)

	require.Equal(t, http.StatusOK, getRR.Code)
	assert.Equal(t, content, getRR.Body.Bytes())
	assert.Equal(t, "image/png", getRR.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", getRR.Header().Get("Cache-Control"))
}
