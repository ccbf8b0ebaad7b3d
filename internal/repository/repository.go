package repository

import (
	"context"
	"time"

	"gkbc-backend/internal/domain"
)

type ApplicantRepository interface {
	Create(ctx context.Context, a *domain.Applicant) error
	GetByID(ctx context.Context, id string) (*domain.Applicant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Applicant, error)
	UpdateProfile(ctx context.Context, a *domain.Applicant) error
	ListPending(ctx context.Context) ([]domain.Applicant, error)
	ListApproved(ctx context.Context) ([]domain.Applicant, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, pv *domain.PaymentVerification) error
	LatestByUser(ctx context.Context, userID string) (*domain.PaymentVerification, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PaymentVerification, error)
}

// ReviewRepository executes an admin decision as one transaction over the
// applicant row and the applicant's pending payment_verifications row. The
// writes are unconditional field sets, so replaying a decision converges on
// the same state.
type ReviewRepository interface {
	Approve(ctx context.Context, applicantID, adminID string, at time.Time) error
	Reject(ctx context.Context, applicantID, adminID, reason string, at time.Time) error
	// ListOrphanedApprovals returns applicants marked approved whose
	// payment_verified flag was lost, or whose pre-approval payment row is
	// still pending. Such pairs predate the transactional review path and
	// are repaired by the reconciliation job. Payments submitted after the
	// approval are new claims and never count as orphaned.
	ListOrphanedApprovals(ctx context.Context) ([]domain.Applicant, error)
}

type EmailLogRepository interface {
	Create(ctx context.Context, n *domain.EmailNotification) error
	ListByUser(ctx context.Context, userID string) ([]domain.EmailNotification, error)
}

type AdminRepository interface {
	IsAdmin(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
}
