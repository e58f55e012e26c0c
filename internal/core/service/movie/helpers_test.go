package movie_test

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/nishantsir0hi/streamify/internal/adapters/eventbroker"
	"github.com/nishantsir0hi/streamify/internal/adapters/repository"
	"github.com/nishantsir0hi/streamify/internal/adapters/storage/filesystem"
	"github.com/nishantsir0hi/streamify/internal/config"
	"github.com/nishantsir0hi/streamify/internal/core/port"
	"github.com/nishantsir0hi/streamify/internal/core/service/movie"

	"github.com/stretchr/testify/require"
)

var defaultCfg = config.UploadConfig{
	Dir:              "uploads",
	BaseURL:          "http://localhost:5000",
	MaxVideoSize:     1 << 20,
	MaxThumbnailSize: 1 << 10,
}

type formPart struct {
	field       string
	filename    string
	contentType string
	body        []byte
}

func titlePart(title string) formPart {
	return formPart{field: "title", body: []byte(title)}
}

func videoPart(filename string, contentType string, size int) formPart {
	return formPart{field: "file", filename: filename, contentType: contentType, body: bytes.Repeat([]byte("v"), size)}
}

func thumbnailPart(filename string, contentType string, size int) formPart {
	return formPart{field: "thumbnail", filename: filename, contentType: contentType, body: bytes.Repeat([]byte("t"), size)}
}

func encodeForm(t *testing.T, parts ...formPart) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		if p.filename == "" {
			require.NoError(t, w.WriteField(p.field, string(p.body)))
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.field, p.filename))
		h.Set("Content-Type", p.contentType)
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write(p.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes(), w.Boundary()
}

func newForm(t *testing.T, parts ...formPart) *multipart.Reader {
	t.Helper()
	body, boundary := encodeForm(t, parts...)
	return multipart.NewReader(bytes.NewReader(body), boundary)
}

type fixture struct {
	service   port.MovieService
	repo      *repository.MockMovieRepository
	publisher *eventbroker.MockPublisher
	blobs     *filesystem.Adapter
	dir       string
}

func newFixture(t *testing.T, cfg config.UploadConfig) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := filepath.Join(t.TempDir(), cfg.Dir)
	blobs, err := filesystem.NewAdapter(dir, logger)
	require.NoError(t, err)

	repo := repository.NewMockMovieRepository()
	publisher := eventbroker.NewMockPublisher()
	return &fixture{
		service:   movie.NewMovieService(repo, blobs, publisher, cfg, logger),
		repo:      repo,
		publisher: publisher,
		blobs:     blobs,
		dir:       dir,
	}
}

func (f *fixture) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (f *fixture) writeBlob(t *testing.T, name string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, name), bytes.Repeat([]byte("x"), size), 0o644))
}
