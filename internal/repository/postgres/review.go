package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Approve marks the applicant approved and their pending payment verified in
// one transaction. Both statements are unconditional field sets keyed by id,
// so replaying an approval is a no-op in effect.
func (r *reviewRepository) Approve(ctx context.Context, applicantID, adminID string, at time.Time) error {
	return r.inTx(ctx, "approve", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE applicants SET approval_status=$1, payment_verified=TRUE, rejection_reason=NULL, approved_by=$2, approved_at=$3, updated_on=$4 WHERE id=$5`,
			domain.ApprovalStatusApproved, adminID, at, at.Format("2006-01-02"), applicantID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		// The created_at bound keeps a replayed approval (reconciliation
		// passes at with the recorded approved_at) from verifying payments
		// submitted after the decision.
		_, err = tx.ExecContext(ctx,
			`UPDATE payment_verifications SET status=$1, verified_by=$2, verified_at=$3 WHERE user_id=$4 AND status=$5 AND created_at <= $3`,
			domain.PaymentStatusVerified, adminID, at, applicantID, domain.PaymentStatusPending)
		return err
	})
}

// Reject mirrors Approve: applicant rejected with the reason, pending payment
// rejected with the reason copied into notes.
func (r *reviewRepository) Reject(ctx context.Context, applicantID, adminID, reason string, at time.Time) error {
	return r.inTx(ctx, "reject", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE applicants SET approval_status=$1, payment_verified=FALSE, rejection_reason=$2, approved_by=$3, approved_at=$4, updated_on=$5 WHERE id=$6`,
			domain.ApprovalStatusRejected, reason, adminID, at, at.Format("2006-01-02"), applicantID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE payment_verifications SET status=$1, verified_by=$2, verified_at=$3, notes=$4 WHERE user_id=$5 AND status=$6`,
			domain.PaymentStatusRejected, adminID, at, reason, applicantID, domain.PaymentStatusPending)
		return err
	})
}

func (r *reviewRepository) ListOrphanedApprovals(ctx context.Context) ([]domain.Applicant, error) {
	// Only payments submitted before the approval count as orphaned; a
	// pending payment from an already-approved member is a new claim
	// awaiting its own review, not a lost write.
	query := `SELECT ` + applicantColumns + ` FROM applicants a
	          WHERE a.approval_status = $1
	            AND (a.payment_verified = FALSE
	                 OR EXISTS (SELECT 1 FROM payment_verifications pv
	                            WHERE pv.user_id = a.id AND pv.status = $2 AND pv.created_at <= a.approved_at))`
	rows, err := r.db.QueryContext(ctx, query, domain.ApprovalStatusApproved, domain.PaymentStatusPending)
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

func (r *reviewRepository) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", op, err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Rollback failed", "op", op, "error", rbErr)
		}
		return err
	}
	return tx.Commit()
}
