package port

import (
	"context"
	"mime/multipart"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// MovieRepository is an interface to define movie metadata store interactions
type MovieRepository interface {
	// Create stores the movie and sets its ID (and CreatedAt when zero)
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	// List returns every movie, newest first
	List(ctx context.Context) ([]domain.Movie, error)
	Delete(ctx context.Context, id string) error
}

// MovieService is an interface to define movie service
type MovieService interface {
	UploadMovie(ctx context.Context, form *multipart.Reader) (*domain.Movie, error)
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}
