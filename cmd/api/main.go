package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	natspub "github.com/nishantsir0hi/streamify/internal/adapters/eventbroker/nats"
	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi"
	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/media"
	moviehandler "github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/v1/movie"
	"github.com/nishantsir0hi/streamify/internal/adapters/repository/mongo"
	"github.com/nishantsir0hi/streamify/internal/adapters/repository/postgres"
	"github.com/nishantsir0hi/streamify/internal/adapters/storage/filesystem"
	"github.com/nishantsir0hi/streamify/internal/adapters/storage/minio"
	"github.com/nishantsir0hi/streamify/internal/config"
	"github.com/nishantsir0hi/streamify/internal/core/port"
	"github.com/nishantsir0hi/streamify/internal/core/service/cleanup"
	movieservice "github.com/nishantsir0hi/streamify/internal/core/service/movie"
	"github.com/nishantsir0hi/streamify/internal/core/service/stream"
	"github.com/nishantsir0hi/streamify/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		slog.Error("failed to init logger", "error", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	//storage
	blobStore, err := initBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init blob store", "backend", cfg.Storage.BlobBackend, "error", err)
		os.Exit(1)
	}

	//repositories
	movieRepo, closeRepo, err := initMovieRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init metadata store", "backend", cfg.Storage.MetadataBackend, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	//events
	publisher, err := initPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init event publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	movieService := movieservice.NewMovieService(movieRepo, blobStore, publisher, cfg.Upload, logger)
	streamService := stream.NewStreamService(blobStore, logger)
	cleanupService := cleanup.NewCleanupService(movieRepo, blobStore, logger)

	//http
	movieHandler := moviehandler.NewMovieHandlerV1(movieService, cfg.Upload, logger)
	mediaHandler := media.NewMediaHandler(streamService, logger)

	router := chi.NewRouter(logger, movieHandler, mediaHandler, cfg.CORS)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "env", cfg.Env.Env)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	if cfg.Cleanup.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			initCleanupTask(ctx, cleanupService, cfg.Cleanup, logger)
		}()
	}

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.BlobStore, error) {
	switch cfg.Storage.BlobBackend {
	case config.BlobBackendMinio:
		return minio.NewAdapter(ctx, cfg.Minio, logger)
	default:
		return filesystem.NewAdapter(cfg.Upload.Dir, logger)
	}
}

func initMovieRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.MovieRepository, func(), error) {
	switch cfg.Storage.MetadataBackend {
	case config.MetadataBackendPostgres:
		db, err := initDB(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("db connection established")
		closeDB := func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}
		return postgres.NewSqlMovieRepository(db), closeDB, nil

	default:
		client, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("mongodb connection established", "database", cfg.Mongo.Database)
		disconnect := func(client *mongodriver.Client) func() {
			return func() {
				disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(disconnectCtx); err != nil {
					logger.Error("failed to disconnect from mongodb", "error", err)
				}
			}
		}(client)

		collection := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		repo, err := mongo.NewMovieRepository(ctx, collection)
		if err != nil {
			disconnect()
			return nil, nil, err
		}
		return repo, disconnect, nil
	}
}

func initPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (port.EventPublisher, error) {
	if cfg.URL == "" {
		logger.Info("NATS_URL not set, movie events are not published")
		return natspub.NopPublisher{}, nil
	}
	return natspub.NewNATSPublisher(ctx, cfg, logger)
}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, cfg config.CleanupConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.Every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", cfg.Every, "grace", cfg.Grace)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			removed, err := service.SweepOrphanBlobs(ctx, time.Now().Add(-cfg.Grace))
			if err != nil {
				logger.Error("failed to sweep orphan blobs", "error", err)
			} else {
				logger.Info("cleanup task completed successfully", "removed", removed)
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
