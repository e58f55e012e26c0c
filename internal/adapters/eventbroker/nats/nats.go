package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/nishantsir0hi/streamify/internal/config"
	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

// Publisher is a struct to publish movie events to a JetStream stream
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects to nats and makes sure the movie stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.SubjectPrefix + ".>"},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// Subject returns the subject an event of the given type is published on
func (p *Publisher) Subject(eventType domain.MovieEventType) string {
	return p.config.SubjectPrefix + "." + string(eventType)
}

// Publish publishes the event and waits for the stream ack
func (p *Publisher) Publish(ctx context.Context, event domain.MovieEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ack, err := p.js.Publish(ctx, p.Subject(event.Type), data)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("movie event published", "type", event.Type, "movie_id", event.MovieID, "seq", ack.Sequence)
	return nil
}

// Close graceful shutdown
func (p *Publisher) Close() error {
	if p.conn != nil {
		return p.conn.Drain()
	}
	return nil
}

// NopPublisher drops every event, used when no NATS url is configured
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.MovieEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}

var (
	_ port.EventPublisher = (*Publisher)(nil)
	_ port.EventPublisher = NopPublisher{}
)
