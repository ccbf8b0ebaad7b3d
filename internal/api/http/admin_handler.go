package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gkbc-backend/internal/service"
)

// AdminHandler serves the review endpoints. Authorization is enforced in the
// service layer against the admin membership table, so a forged or stale
// session flag never grants access.
type AdminHandler struct {
	admin service.AdminService
}

func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	pending, err := h.admin.ListPendingApplicants(r.Context(), session.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}
	applicantID := mux.Vars(r)["id"]

	if err := h.admin.Approve(r.Context(), applicantID, session.AccountID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}
	applicantID := mux.Vars(r)["id"]

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.admin.Reject(r.Context(), applicantID, req.Reason, session.AccountID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}
	applicantID := mux.Vars(r)["id"]

	notifications, err := h.admin.Notifications(r.Context(), session.AccountID, applicantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}
