package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MessageResponse is the body of every error and of plain acknowledgements
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes v with the given status
func JSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("error encoding response", "error", err)
	}
}

// Message writes {"message": msg} with the given status
func Message(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	JSON(w, logger, status, MessageResponse{Message: msg})
}
