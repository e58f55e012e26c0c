package movie

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nishantsir0hi/streamify/internal/config"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

// HandlerV1 is the handler for movie routes
type HandlerV1 struct {
	movieService port.MovieService
	uploadCfg    config.UploadConfig
	logger       *slog.Logger
}

// NewMovieHandlerV1 creates HandlerV1
func NewMovieHandlerV1(service port.MovieService, cfg config.UploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		movieService: service,
		uploadCfg:    cfg,
		logger:       logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	// uploads stream for as long as the client sends, only metadata calls get a deadline
	router.Post("/upload", h.UploadMovieV1)
	router.With(middleware.Timeout(30*time.Second)).Get("/", h.ListMoviesV1)
	router.With(middleware.Timeout(30*time.Second)).Delete("/{id}", h.DeleteMovieV1)

	return router
}
