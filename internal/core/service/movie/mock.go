package movie

import (
	"context"
	"mime/multipart"

	"github.com/nishantsir0hi/streamify/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockMovieService is a mock implementation of MovieService
type MockMovieService struct {
	mock.Mock
}

// NewMockMovieService creates a new MockMovieService
func NewMockMovieService() *MockMovieService {
	return &MockMovieService{}
}

func (m *MockMovieService) UploadMovie(ctx context.Context, form *multipart.Reader) (*domain.Movie, error) {
	args := m.Called(ctx, form)
	movie, _ := args.Get(0).(*domain.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]domain.Movie)
	return movies, args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
