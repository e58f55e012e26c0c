package movie_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi"
	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/media"
	moviehandler "github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/v1/movie"
	"github.com/nishantsir0hi/streamify/internal/config"
	movieservice "github.com/nishantsir0hi/streamify/internal/core/service/movie"

	"github.com/stretchr/testify/require"
)

var uploadCfg = config.UploadConfig{
	BaseURL:          "http://localhost:5000",
	MaxVideoSize:     1 << 20,
	MaxThumbnailSize: 1 << 10,
}

func newRouter(svc *movieservice.MockMovieService, cfg config.UploadConfig) http.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := moviehandler.NewMovieHandlerV1(svc, cfg, discardLogger)
	return chi.NewRouter(discardLogger, handler, media.NewMediaHandler(nil, discardLogger), config.CORSConfig{AllowedOrigins: []string{"*"}})
}

func uploadRequest(t *testing.T, title string, filename string, size int) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", title))
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("v"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/movies/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
