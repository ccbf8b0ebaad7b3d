package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCard, PaymentMethodCash, PaymentMethodMobileMoney:
		return true
	}
	return false
}

// PaymentVerification is one payment claim by an applicant. Creation is
// applicant-driven; every later transition is admin-driven.
type PaymentVerification struct {
	ID         int64         `json:"id"`
	UserID     string        `json:"user_id"`
	Reference  string        `json:"payment_reference"`
	Amount     float64       `json:"payment_amount"`
	Method     PaymentMethod `json:"payment_method"`
	ProofURL   string        `json:"payment_proof_url,omitempty"`
	Status     PaymentStatus `json:"status"`
	Notes      string        `json:"notes,omitempty"`
	VerifiedBy *string       `json:"verified_by,omitempty"`
	VerifiedAt *time.Time    `json:"verified_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// PaymentProjection is the applicant-visible view of their own approval and
// payment state, re-derived on each load.
type PaymentProjection struct {
	ApprovalStatus  ApprovalStatus       `json:"approval_status"`
	PaymentVerified bool                 `json:"payment_verified"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	Latest          *PaymentVerification `json:"payment_verification,omitempty"`
}
