package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/rental"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("Failed to encode response", logger.Err(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestIDFromContext(r.Context())})
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	var validationErr *rental.CheckoutValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownCode), errors.Is(err, domain.ErrToolNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrToolCheckedOut), errors.Is(err, domain.ErrToolNotCheckedOut):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "request_id", RequestIDFromContext(r.Context()), logger.Err(err))
		writeError(w, r, status, "internal server error")
		return
	}
	writeError(w, r, status, err.Error())
}
