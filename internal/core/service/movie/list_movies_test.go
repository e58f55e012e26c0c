package movie_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nishantsir0hi/streamify/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieService_ListMovies_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cfg := defaultCfg
	cfg.BaseURL = "https://cdn.example.com/"
	f := newFixture(t, cfg)
	f.repo.On("List", ctx).Return([]domain.Movie{
		{ID: "2", Title: "Newer", VideoFilename: "2-2.mp4", ThumbnailFilename: "thumb-2-2.jpg"},
		{ID: "1", Title: "Older", VideoFilename: "1-1.mp4"},
	}, nil)

	// Act
	movies, err := f.service.ListMovies(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Newer", movies[0].Title)
	assert.Equal(t, "https://cdn.example.com/uploads/2-2.mp4", movies[0].URL)
	assert.Equal(t, "https://cdn.example.com/uploads/thumb-2-2.jpg", movies[0].ThumbnailURL)
	assert.Equal(t, "https://cdn.example.com/uploads/1-1.mp4", movies[1].URL)
	assert.Empty(t, movies[1].ThumbnailURL)
}

func TestMovieService_ListMovies_Empty(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(t, defaultCfg)
	f.repo.On("List", ctx).Return([]domain.Movie{}, nil)

	// Act
	movies, err := f.service.ListMovies(ctx)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieService_ListMovies_RepositoryError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(t, defaultCfg)
	f.repo.On("List", ctx).Return([]domain.Movie(nil), errors.New("timeout"))

	// Act
	_, err := f.service.ListMovies(ctx)

	// Assert
	require.ErrorIs(t, err, domain.ErrPersistence)
}
