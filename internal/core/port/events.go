package port

import (
	"context"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// EventPublisher is an interface to define an event publisher (nats, kafka, ...)
type EventPublisher interface {
	Publish(ctx context.Context, event domain.MovieEvent) error
	Close() error
}
