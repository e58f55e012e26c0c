package movie_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/respond"
	moviehandler "github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/v1/movie"
	"github.com/nishantsir0hi/streamify/internal/core/domain"
	movieservice "github.com/nishantsir0hi/streamify/internal/core/service/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadMovieV1_Success(t *testing.T) {
	//Arrange
	created := &domain.Movie{
		ID:            "665f1c2e8b3f4a0012345678",
		Title:         "Test",
		VideoFilename: "1717236000000-42.mp4",
		OriginalName:  "clip.mp4",
		Size:          500,
		MimeType:      "video/mp4",
		CreatedAt:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		URL:           "http://localhost:5000/uploads/1717236000000-42.mp4",
	}
	mockService := movieservice.NewMockMovieService()
	mockService.On("UploadMovie", mock.Anything, mock.AnythingOfType("*multipart.Reader")).Return(created, nil)
	h := newRouter(mockService, uploadCfg)
	w := httptest.NewRecorder()

	//Act
	h.ServeHTTP(w, uploadRequest(t, "Test", "clip.mp4", 500))

	//Assert
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp moviehandler.V1MovieResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Test", resp.Title)
	assert.Equal(t, int64(500), resp.Size)
	assert.Equal(t, created.URL, resp.URL)
	assert.Empty(t, resp.ThumbnailURL)
	mockService.AssertExpectations(t)
}

func TestUploadMovieV1_ResponseUsesMongoStyleID(t *testing.T) {
	//Arrange
	mockService := movieservice.NewMockMovieService()
	mockService.On("UploadMovie", mock.Anything, mock.Anything).Return(&domain.Movie{ID: "abc", VideoFilename: "1-1.mp4"}, nil)
	h := newRouter(mockService, uploadCfg)
	w := httptest.NewRecorder()

	//Act
	h.ServeHTTP(w, uploadRequest(t, "Test", "clip.mp4", 10))

	//Assert
	var raw map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	assert.Equal(t, "abc", raw["_id"])
	assert.NotContains(t, raw, "thumbnailFilename")
}

func TestUploadMovieV1_Error(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			serviceErr: fmt.Errorf("%w: file: extension .txt is not allowed (expected one of: .mp4, .mov, .avi, .mkv)", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantMsg:    ".mp4, .mov, .avi, .mkv",
		},
		{
			name:       "too large",
			serviceErr: fmt.Errorf("file: %w: more than 100 bytes", domain.ErrFileTooLarge),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "file too large",
		},
		{
			name:       "body cap",
			serviceErr: fmt.Errorf("%w: %w", domain.ErrUploadInterrupted, &http.MaxBytesError{Limit: 2048}),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "2048",
		},
		{
			name:       "interrupted",
			serviceErr: fmt.Errorf("%w: unexpected EOF", domain.ErrUploadInterrupted),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "upload interrupted",
		},
		{
			name:       "persistence",
			serviceErr: fmt.Errorf("%w: could not save movie: timeout", domain.ErrPersistence),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Error uploading movie",
		},
		{
			name:       "storage",
			serviceErr: fmt.Errorf("%w: disk full", domain.ErrStorage),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Error uploading movie",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Arrange
			mockService := movieservice.NewMockMovieService()
			mockService.On("UploadMovie", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			h := newRouter(mockService, uploadCfg)
			w := httptest.NewRecorder()

			//Act
			h.ServeHTTP(w, uploadRequest(t, "Test", "clip.mp4", 10))

			//Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			var resp respond.MessageResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Contains(t, resp.Message, tt.wantMsg)
		})
	}
}

func TestUploadMovieV1_NotMultipart(t *testing.T) {
	//Arrange
	mockService := movieservice.NewMockMovieService()
	h := newRouter(mockService, uploadCfg)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies/upload", strings.NewReader(`{"title":"Test"}`))
	req.Header.Set("Content-Type", "application/json")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UploadMovie", mock.Anything, mock.Anything)
}

func TestUploadMovieV1_DeclaredLengthTooLarge(t *testing.T) {
	//Arrange
	cfg := uploadCfg
	cfg.MaxVideoSize = 10
	cfg.MaxThumbnailSize = 10
	mockService := movieservice.NewMockMovieService()
	h := newRouter(mockService, cfg)
	w := httptest.NewRecorder()

	//Act
	h.ServeHTTP(w, uploadRequest(t, "Test", "clip.mp4", 2<<20))

	//Assert
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	mockService.AssertNotCalled(t, "UploadMovie", mock.Anything, mock.Anything)
}
