package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/media"
	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/v1/movie"
	"github.com/nishantsir0hi/streamify/internal/config"
)

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, movieHandler *movie.HandlerV1, mediaHandler *media.Handler, corsCfg config.CORSConfig) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Range", "X-Request-ID"},
		// players read these to seek within a video
		ExposedHeaders: []string{"Content-Range", "Accept-Ranges", "Content-Length"},
		MaxAge:         300,
	}))

	r.Mount("/api/movies", movieHandler.Routes())
	r.Mount("/uploads", mediaHandler.Routes())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
