package movie

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/respond"
	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// UploadMovieV1 streams a multipart upload (title, file, thumbnail) into the movie service
func (h *HandlerV1) UploadMovieV1(w http.ResponseWriter, r *http.Request) {
	maxSize := h.uploadCfg.MaxRequestSize()
	if r.ContentLength > maxSize {
		respond.Message(w, h.logger, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body larger than %d bytes", maxSize))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	form, err := r.MultipartReader()
	if err != nil {
		respond.Message(w, h.logger, http.StatusBadRequest, "request must be multipart/form-data")
		return
	}

	movie, err := h.movieService.UploadMovie(r.Context(), form)
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		respond.Message(w, h.logger, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body larger than %d bytes", maxBytesErr.Limit))
	case errors.Is(err, domain.ErrFileTooLarge):
		respond.Message(w, h.logger, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, domain.ErrValidation):
		respond.Message(w, h.logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUploadInterrupted):
		h.logger.Warn("upload interrupted", "error", err)
		respond.Message(w, h.logger, http.StatusBadRequest, "upload interrupted")
	case err != nil:
		h.logger.Error("error uploading movie", "error", err)
		respond.Message(w, h.logger, http.StatusInternalServerError, "Error uploading movie")
	default:
		respond.JSON(w, h.logger, http.StatusCreated, toResponse(*movie))
	}
}
