package port

import (
	"context"
	"time"
)

// CleanupService is service that handles cleanup
type CleanupService interface {
	// SweepOrphanBlobs deletes blobs older than olderThan that no movie references
	SweepOrphanBlobs(ctx context.Context, olderThan time.Time) (int, error)
}
