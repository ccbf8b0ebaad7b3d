package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr   *domain.ValidationError
		authErr         *domain.AuthError
		authzErr        *domain.AuthorizationError
		uploadErr       *domain.UploadError
		notificationErr *domain.NotificationError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Message})
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: authErr.Error()})
	case errors.As(err, &authzErr), errors.Is(err, domain.ErrNotAuthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "not authorized"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.As(err, &uploadErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "file upload failed"})
	case errors.As(err, &notificationErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "notification delivery failed"})
	default:
		logger.Error("Unhandled request error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
