package cleanup

import (
	"log/slog"

	"github.com/nishantsir0hi/streamify/internal/core/port"
)

type cleanupService struct {
	repo   port.MovieRepository
	blobs  port.BlobStore
	logger *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(repo port.MovieRepository, blobs port.BlobStore, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		repo:   repo,
		blobs:  blobs,
		logger: logger,
	}
}
