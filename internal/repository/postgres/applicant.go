package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
)

type applicantRepository struct {
	db *sql.DB
}

func NewApplicantRepository(db *sql.DB) repository.ApplicantRepository {
	return &applicantRepository{db: db}
}

const applicantColumns = `id, email, full_name, phone, COALESCE(bio, ''), COALESCE(avatar_url, ''),
	approval_status, payment_verified, COALESCE(rejection_reason, ''), approved_by, approved_at, created_on, updated_on`

// Create stamps created_on with full precision so that same-day signups
// still list newest first; the date-only form is a presentation concern.
func (r *applicantRepository) Create(ctx context.Context, a *domain.Applicant) error {
	query := `INSERT INTO applicants (id, email, full_name, phone, bio, avatar_url, approval_status, payment_verified, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()) RETURNING created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, a.ID, a.Email, a.FullName, a.Phone, a.Bio, a.AvatarURL,
		a.ApprovalStatus, a.PaymentVerified).Scan(&createdOn, &updatedOn)
	if err != nil {
		return err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	a.UpdatedOn = updatedOn.Format("2006-01-02")
	return nil
}

func (r *applicantRepository) GetByID(ctx context.Context, id string) (*domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *applicantRepository) GetByEmail(ctx context.Context, email string) (*domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *applicantRepository) UpdateProfile(ctx context.Context, a *domain.Applicant) error {
	query := `UPDATE applicants SET full_name=$1, phone=$2, bio=$3, avatar_url=$4, updated_on=NOW() WHERE id=$5 RETURNING updated_on`
	var updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, a.FullName, a.Phone, a.Bio, a.AvatarURL, a.ID).Scan(&updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	a.UpdatedOn = updatedOn.Format("2006-01-02")
	return nil
}

func (r *applicantRepository) ListPending(ctx context.Context) ([]domain.Applicant, error) {
	logger.DatabaseCall("SELECT", "applicants", "approval_status", domain.ApprovalStatusPending)
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE approval_status = $1 ORDER BY created_on DESC, id`
	return r.list(ctx, query, domain.ApprovalStatusPending)
}

func (r *applicantRepository) ListApproved(ctx context.Context) ([]domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE approval_status = $1 ORDER BY created_on DESC, id`
	return r.list(ctx, query, domain.ApprovalStatusApproved)
}

func (r *applicantRepository) list(ctx context.Context, query string, args ...any) ([]domain.Applicant, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		applicants = append(applicants, *a)
	}
	return applicants, rows.Err()
}

func (r *applicantRepository) scanOne(row *sql.Row) (*domain.Applicant, error) {
	a, err := scanApplicant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplicant(row rowScanner) (*domain.Applicant, error) {
	a := &domain.Applicant{}
	var approvedBy sql.NullString
	var approvedAt sql.NullTime
	var createdOn, updatedOn time.Time
	err := row.Scan(&a.ID, &a.Email, &a.FullName, &a.Phone, &a.Bio, &a.AvatarURL,
		&a.ApprovalStatus, &a.PaymentVerified, &a.RejectionReason, &approvedBy, &approvedAt, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	if approvedBy.Valid {
		a.ApprovedBy = &approvedBy.String
	}
	if approvedAt.Valid {
		t := approvedAt.Time
		a.ApprovedAt = &t
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	a.UpdatedOn = updatedOn.Format("2006-01-02")
	return a, nil
}
