package storage

import (
	"context"
	"io"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

// Save drains r so callers observe the same stream consumption as with a real store
func (m *MockStorage) Save(ctx context.Context, name string, r io.Reader, contentType string, maxSize int64) (int64, error) {
	_, _ = io.Copy(io.Discard, r)
	args := m.Called(ctx, name, contentType, maxSize)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) Open(ctx context.Context, name string) (port.Blob, error) {
	args := m.Called(ctx, name)
	blob, _ := args.Get(0).(port.Blob)
	return blob, args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockStorage) List(ctx context.Context) ([]domain.BlobInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BlobInfo), args.Error(1)
}
