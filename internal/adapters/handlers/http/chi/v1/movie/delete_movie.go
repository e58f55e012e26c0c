package movie

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/respond"
	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// DeleteMovieV1 deletes a movie and, best-effort, its blobs
func (h *HandlerV1) DeleteMovieV1(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.movieService.DeleteMovie(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		respond.Message(w, h.logger, http.StatusNotFound, "Movie not found")
	case err != nil:
		h.logger.Error("error deleting movie", "movie_id", id, "error", err)
		respond.Message(w, h.logger, http.StatusInternalServerError, "Error deleting movie")
	default:
		respond.Message(w, h.logger, http.StatusOK, "Movie deleted successfully")
	}
}
