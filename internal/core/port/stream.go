package port

import (
	"context"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// StreamService serves stored blobs, honoring byte ranges
type StreamService interface {
	OpenBlob(ctx context.Context, filename string, rangeHeader string) (*domain.BlobStream, error)
}
