package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to write response", "error", err)
	}
}

// writeError - maps err onto a status code, internal failures are not shown to the client.
func writeError(log *slog.Logger, w http.ResponseWriter, err error) {
	status := statusOf(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		message = http.StatusText(status)
	}

	writeJSON(log, w, status, errorResponse{Error: message})
}

func statusOf(err error) int {
	switch {
	case apperror.IsValidation(err), errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNothingToAbandon):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, body any) error {
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}

	return nil
}

var errMalformedBody = errors.New("malformed request body")
