package movie

import (
	"context"
	"fmt"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

func (s *movieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list movies: %w", domain.ErrPersistence, err)
	}

	for i := range movies {
		movies[i].Decorate(s.uploadCfg.BaseURL)
	}
	return movies, nil
}
