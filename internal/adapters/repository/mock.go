package repository

import (
	"context"

	"github.com/nishantsir0hi/streamify/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{}
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*domain.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
