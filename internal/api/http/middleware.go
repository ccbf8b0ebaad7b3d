package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/security"
	"gkbc-backend/internal/service"
)

// AuthMiddleware validates the bearer token and injects the session into the
// request context. The admin flag is resolved per request from the admin
// membership table, never from the token.
type AuthMiddleware struct {
	tokens security.TokenManager
	admins service.AdminService
}

func NewAuthMiddleware(tokens security.TokenManager, admins service.AdminService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, admins: admins}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "access token required"})
			return
		}

		isAdmin, err := m.admins.IsAdmin(r.Context(), claims.AccountID)
		if err != nil {
			logger.Error("Admin membership lookup failed", "accountID", claims.AccountID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
			return
		}

		session := domain.Session{
			AccountID: claims.AccountID,
			Email:     claims.Email,
			IsAdmin:   isAdmin,
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errAuthHeaderMissing
	}
	if len(header) > 7 && strings.EqualFold(header[0:7], "Bearer ") {
		return header[7:], nil
	}
	return "", errAuthHeaderMalformed
}

var (
	errAuthHeaderMissing   = errors.New("authorization header is required")
	errAuthHeaderMalformed = errors.New("authorization header must be a bearer token")
)

// RequestLogger logs every request with its latency.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
