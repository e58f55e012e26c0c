package stream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

type streamService struct {
	blobs  port.BlobStore
	logger *slog.Logger
}

// NewStreamService creates a new stream service
func NewStreamService(blobs port.BlobStore, logger *slog.Logger) port.StreamService {
	return &streamService{blobs: blobs, logger: logger}
}

// OpenBlob opens filename and positions it on the window asked for by rangeHeader.
// An empty rangeHeader serves the whole blob.
func (s *streamService) OpenBlob(ctx context.Context, filename string, rangeHeader string) (*domain.BlobStream, error) {
	if !isPlainFilename(filename) {
		return nil, fmt.Errorf("%s: %w", filename, domain.ErrBlobNotFound)
	}

	blob, err := s.blobs.Open(ctx, filename)
	if err != nil {
		return nil, err
	}

	stream := &domain.BlobStream{
		Name:        filename,
		ContentType: ContentType(filename),
		Size:        blob.Size(),
		ModTime:     blob.ModTime(),
		Body:        blob,
	}
	if rangeHeader == "" {
		return stream, nil
	}

	window, err := ParseRange(rangeHeader, blob.Size())
	if err != nil {
		blob.Close()
		return nil, err
	}

	if _, err := blob.Seek(window.Start, io.SeekStart); err != nil {
		blob.Close()
		return nil, fmt.Errorf("%w: failed to seek blob: %w", domain.ErrStorage, err)
	}

	stream.Range = &window
	stream.Body = &windowReader{
		Reader: io.LimitReader(blob, window.Length()),
		Closer: blob,
	}
	return stream, nil
}

var contentTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ContentType infers the content type of a blob from its extension
func ContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if contentType, ok := contentTypes[ext]; ok {
		return contentType
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

func isPlainFilename(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}

type windowReader struct {
	io.Reader
	io.Closer
}
