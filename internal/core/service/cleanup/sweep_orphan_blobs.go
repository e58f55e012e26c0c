package cleanup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// SweepOrphanBlobs deletes blobs last modified before olderThan that no movie references.
// Blobs newer than olderThan may belong to an upload still in flight and are left alone.
func (c *cleanupService) SweepOrphanBlobs(ctx context.Context, olderThan time.Time) (int, error) {
	blobs, err := c.blobs.List(ctx)
	if err != nil {
		return 0, err
	}

	candidates := make([]domain.BlobInfo, 0, len(blobs))
	for _, blob := range blobs {
		if blob.ModTime.Before(olderThan) {
			candidates = append(candidates, blob)
		}
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	movies, err := c.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: could not list movies: %w", domain.ErrPersistence, err)
	}
	referenced := make(map[string]struct{}, len(movies)*2)
	for _, movie := range movies {
		for _, name := range movie.Filenames() {
			referenced[name] = struct{}{}
		}
	}

	removed := 0
	for _, blob := range candidates {
		if _, ok := referenced[blob.Name]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		if err := c.blobs.Delete(ctx, blob.Name); err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
			c.logger.Error("failed to delete orphan blob", "filename", blob.Name, "error", err)
			continue
		}
		c.logger.Info("orphan blob deleted", "filename", blob.Name, "size", blob.Size, "modified_at", blob.ModTime)
		removed++
	}

	c.logger.Info("orphan blob sweep completed", "checked", len(candidates), "removed", removed)
	return removed, nil
}
