package service

import (
	"context"
	"io"

	"gkbc-backend/internal/domain"
)

// SignUpInput carries the registration form fields.
type SignUpInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// PaymentSubmission carries one payment claim. Proof is optional; when set it
// is uploaded before anything is recorded.
type PaymentSubmission struct {
	Reference        string
	Amount           float64
	Method           domain.PaymentMethod
	Proof            io.Reader
	ProofContentType string
}

type RegistrationService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.Applicant, error)
	Login(ctx context.Context, email, password string) (*domain.Applicant, string, string, error) // applicant, access, refresh
	Logout(ctx context.Context, accountID string) error
	Profile(ctx context.Context, accountID string) (*domain.Applicant, error)
}

type PaymentService interface {
	SubmitPayment(ctx context.Context, applicantID string, in PaymentSubmission) (*domain.PaymentVerification, error)
	PaymentStatus(ctx context.Context, applicantID string) (*domain.PaymentProjection, error)
}

type AdminService interface {
	IsAdmin(ctx context.Context, callerID string) (bool, error)
	ListPendingApplicants(ctx context.Context, adminID string) ([]domain.PendingApplicant, error)
	Approve(ctx context.Context, applicantID, adminID string) error
	Reject(ctx context.Context, applicantID, reason, adminID string) error
	Notifications(ctx context.Context, adminID, applicantID string) ([]domain.EmailNotification, error)
}

type MemberService interface {
	ListMembers(ctx context.Context) ([]domain.Applicant, error)
	GetMember(ctx context.Context, id string) (*domain.Applicant, error)
}

// Notification is one dispatch request handed to the dispatcher.
type Notification struct {
	UserID  string
	To      string
	ToName  string
	Type    domain.EmailType
	Subject string
	HTML    string
}

// NotificationDispatcher delivers an email once, best-effort, and writes an
// audit row either way. A returned error never rolls back the state
// transition that triggered it.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// EmailSender is the delivery collaborator behind the dispatcher.
type EmailSender interface {
	Send(ctx context.Context, to, toName, subject, html string) error
}
