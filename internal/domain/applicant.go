package domain

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Applicant is a registered user whose community access is gated on admin
// approval. The password credential lives with the identity provider, not here.
type Applicant struct {
	ID              string         `json:"id"`
	Email           string         `json:"email"`
	FullName        string         `json:"full_name"`
	Phone           string         `json:"phone"`
	Bio             string         `json:"bio,omitempty"`
	AvatarURL       string         `json:"avatar_url,omitempty"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	PaymentVerified bool           `json:"payment_verified"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	ApprovedBy      *string        `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`
	CreatedOn       string         `json:"created_on"`
	UpdatedOn       string         `json:"updated_on"`
}

// PendingApplicant is an applicant joined with their payment history,
// as presented to the admin review screen.
type PendingApplicant struct {
	Applicant Applicant             `json:"applicant"`
	Payments  []PaymentVerification `json:"payment_verifications"`
}

// Session is the per-request caller context resolved by the API layer:
// populated after token validation, enriched with the admin membership lookup.
type Session struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}
