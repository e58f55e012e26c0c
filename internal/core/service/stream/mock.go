package stream

import (
	"context"

	"github.com/nishantsir0hi/streamify/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockStreamService is a mock implementation of StreamService
type MockStreamService struct {
	mock.Mock
}

// NewMockStreamService creates a new MockStreamService
func NewMockStreamService() *MockStreamService {
	return &MockStreamService{}
}

func (m *MockStreamService) OpenBlob(ctx context.Context, filename string, rangeHeader string) (*domain.BlobStream, error) {
	args := m.Called(ctx, filename, rangeHeader)
	stream, _ := args.Get(0).(*domain.BlobStream)
	return stream, args.Error(1)
}
