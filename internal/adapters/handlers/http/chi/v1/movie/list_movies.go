package movie

import (
	"net/http"

	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/respond"
)

// ListMoviesV1 returns every movie, newest first
func (h *HandlerV1) ListMoviesV1(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movieService.ListMovies(r.Context())
	if err != nil {
		h.logger.Error("error listing movies", "error", err)
		respond.Message(w, h.logger, http.StatusInternalServerError, "Error fetching movies")
		return
	}

	resp := make([]V1MovieResponse, 0, len(movies))
	for _, m := range movies {
		resp = append(resp, toResponse(m))
	}
	respond.JSON(w, h.logger, http.StatusOK, resp)
}
