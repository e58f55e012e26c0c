package movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

func (s *movieService) DeleteMovie(ctx context.Context, id string) error {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return err
		}
		return fmt.Errorf("%w: could not find movie: %w", domain.ErrPersistence, err)
	}

	for _, name := range movie.Filenames() {
		err := s.blobs.Delete(ctx, name)
		switch {
		case errors.Is(err, domain.ErrBlobNotFound):
			s.logger.Warn("blob already missing", "movie_id", id, "filename", name)
		case err != nil:
			s.logger.Error("failed to delete blob", "movie_id", id, "filename", name, "error", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return err
		}
		return fmt.Errorf("%w: could not delete movie: %w", domain.ErrPersistence, err)
	}

	s.logger.Info("movie deleted", "movie_id", id)
	s.publish(ctx, domain.MovieEventDeleted, *movie)
	return nil
}
