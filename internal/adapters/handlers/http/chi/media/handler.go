package media

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nishantsir0hi/streamify/internal/adapters/handlers/http/chi/respond"
	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

// Handler serves stored blobs with byte range support
type Handler struct {
	streamService port.StreamService
	logger        *slog.Logger
}

// NewMediaHandler creates Handler
func NewMediaHandler(service port.StreamService, logger *slog.Logger) *Handler {
	return &Handler{
		streamService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{filename}", h.ServeBlob)
	router.Head("/{filename}", h.ServeBlob)

	return router
}

// ServeBlob answers 200 with the whole blob or 206 with the requested window
func (h *Handler) ServeBlob(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	stream, err := h.streamService.OpenBlob(r.Context(), filename, r.Header.Get("Range"))
	var rangeErr *domain.RangeError
	switch {
	case errors.As(err, &rangeErr):
		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", rangeErr.Size))
		respond.Message(w, h.logger, http.StatusRequestedRangeNotSatisfiable, "Requested range not satisfiable")
		return
	case errors.Is(err, domain.ErrBlobNotFound):
		respond.Message(w, h.logger, http.StatusNotFound, "File not found")
		return
	case err != nil:
		h.logger.Error("error opening blob", "filename", filename, "error", err)
		respond.Message(w, h.logger, http.StatusInternalServerError, "Error reading file")
		return
	}
	defer stream.Body.Close()

	header := w.Header()
	header.Set("Content-Type", stream.ContentType)
	header.Set("Accept-Ranges", "bytes")
	header.Set("Content-Length", strconv.FormatInt(stream.ContentLength(), 10))
	if !stream.ModTime.IsZero() {
		header.Set("Last-Modified", stream.ModTime.UTC().Format(http.TimeFormat))
	}

	status := http.StatusOK
	if stream.Range != nil {
		header.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", stream.Range.Start, stream.Range.End, stream.Size))
		status = http.StatusPartialContent
	}
	w.WriteHeader(status)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := io.Copy(w, stream.Body); err != nil {
		// most often the player closed the connection to seek elsewhere
		h.logger.Debug("blob delivery interrupted", "filename", filename, "error", err)
	}
}
