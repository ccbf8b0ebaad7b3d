package http

import (
	"net/http"
	"strconv"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/service"
)

// maxProofSize caps the multipart payment submission at 10 MiB.
const maxProofSize = 10 << 20

// PaymentHandler serves payment submission and status endpoints.
type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Submit accepts a multipart form with reference, amount, method and an
// optional proof image under the "proof" field.
func (h *PaymentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "payment amount must be a number"})
		return
	}

	submission := service.PaymentSubmission{
		Reference: r.FormValue("reference"),
		Amount:    amount,
		Method:    domain.PaymentMethod(r.FormValue("method")),
	}

	file, header, err := r.FormFile("proof")
	if err == nil {
		defer file.Close()
		submission.Proof = file
		submission.ProofContentType = header.Header.Get("Content-Type")
	} else if err != http.ErrMissingFile {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid proof file"})
		return
	}

	pv, err := h.payments.SubmitPayment(r.Context(), session.AccountID, submission)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pv)
}

// Status returns the caller's approval and payment projection.
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	projection, err := h.payments.PaymentStatus(r.Context(), session.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projection)
}
