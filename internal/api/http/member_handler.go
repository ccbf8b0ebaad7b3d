package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gkbc-backend/internal/service"
)

// MemberHandler serves the approved-member directory.
type MemberHandler struct {
	members service.MemberService
}

func NewMemberHandler(members service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.ListMembers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.members.GetMember(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}
