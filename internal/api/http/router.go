package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterDeps bundles the handlers and middleware the router wires together.
type RouterDeps struct {
	Auth    *AuthHandler
	Payment *PaymentHandler
	Admin   *AdminHandler
	Member  *MemberHandler
	Files   *FilesHandler // nil unless local storage is configured
	AuthMW  *AuthMiddleware
}

// NewRouter builds the full route table. Signup and login are public;
// everything else under /api/v1 requires a valid access token.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public endpoints
	api.HandleFunc("/auth/signup", deps.Auth.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", deps.Auth.Login).Methods(http.MethodPost)

	// Authenticated endpoints
	authed := api.NewRoute().Subrouter()
	authed.Use(deps.AuthMW.Handler)
	authed.HandleFunc("/auth/logout", deps.Auth.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/me", deps.Auth.Me).Methods(http.MethodGet)

	authed.HandleFunc("/payments", deps.Payment.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/payments/status", deps.Payment.Status).Methods(http.MethodGet)

	authed.HandleFunc("/members", deps.Member.List).Methods(http.MethodGet)
	authed.HandleFunc("/members/{id}", deps.Member.Get).Methods(http.MethodGet)

	authed.HandleFunc("/admin/pending", deps.Admin.ListPending).Methods(http.MethodGet)
	authed.HandleFunc("/admin/applicants/{id}/approve", deps.Admin.Approve).Methods(http.MethodPost)
	authed.HandleFunc("/admin/applicants/{id}/reject", deps.Admin.Reject).Methods(http.MethodPost)
	authed.HandleFunc("/admin/applicants/{id}/notifications", deps.Admin.Notifications).Methods(http.MethodGet)

	if deps.Files != nil {
		r.HandleFunc("/files/{bucket}/{key}", deps.Files.Serve).Methods(http.MethodGet)
	}

	return r
}
