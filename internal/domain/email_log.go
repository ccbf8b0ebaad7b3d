package domain

import "time"

type EmailType string

const (
	EmailTypeApproval  EmailType = "approval"
	EmailTypeRejection EmailType = "rejection"
	EmailTypeGeneric   EmailType = "generic"
)

type EmailStatus string

const (
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
)

// EmailNotification is the audit record of a single dispatch attempt.
// Delivery is best-effort; the log row is written either way.
type EmailNotification struct {
	ID        int64       `json:"id"`
	UserID    string      `json:"user_id"`
	EmailType EmailType   `json:"email_type"`
	SentTo    string      `json:"sent_to"`
	Subject   string      `json:"subject"`
	Body      string      `json:"body"`
	Status    EmailStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
