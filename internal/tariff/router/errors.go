package router

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/opencustoms/tariff/internal/tariff/duty"
	"github.com/opencustoms/tariff/internal/tariff/store"
)

// errorEnvelope is the structured error body returned by every endpoint.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Type       string    `json:"type"`
	StatusCode int       `json:"status_code"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// writeError maps the error taxonomy to status codes: validation failures to
// 422, unknown hierarchy entries to 404, everything else to a generic 500
// with the detail kept in the server log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status  int
		errType string
		message string
	)

	var validationErr *duty.ValidationError
	var notFoundErr *store.NotFoundError
	var dataAccessErr *store.DataAccessError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
		errType = "validation_error"
		message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		errType = "not_found"
		message = notFoundErr.Error()
	case errors.As(err, &dataAccessErr):
		status = http.StatusInternalServerError
		errType = "data_access_error"
		message = "a data access error occurred"
		slog.ErrorContext(r.Context(), "data access failure", "op", dataAccessErr.Op, "error", dataAccessErr.Err)
	default:
		status = http.StatusInternalServerError
		errType = "internal_error"
		message = "an internal error occurred"
		slog.ErrorContext(r.Context(), "unhandled error", "error", err)
	}

	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Type:       errType,
		StatusCode: status,
		Message:    message,
		Timestamp:  time.Now().UTC(),
	}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
