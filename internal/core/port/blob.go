package port

import (
	"context"
	"io"
	"time"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// Blob is an opened blob that can be read from any offset
type Blob interface {
	io.ReadSeekCloser
	Size() int64
	ModTime() time.Time
}

// BlobStore is an interface to define blob storage interactions
type BlobStore interface {
	// Save streams r into a new blob called name. It fails with domain.ErrFileTooLarge
	// when r yields more than maxSize bytes and leaves nothing behind in that case.
	Save(ctx context.Context, name string, r io.Reader, contentType string, maxSize int64) (int64, error)
	Open(ctx context.Context, name string) (Blob, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.BlobInfo, error)
}
