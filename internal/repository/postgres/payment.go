package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, user_id, payment_reference, payment_amount, payment_method,
	COALESCE(payment_proof_url, ''), status, COALESCE(notes, ''), verified_by, verified_at, created_at`

func (r *paymentRepository) Create(ctx context.Context, pv *domain.PaymentVerification) error {
	logger.DatabaseCall("INSERT", "payment_verifications", "userID", pv.UserID, "reference", pv.Reference)
	query := `INSERT INTO payment_verifications (user_id, payment_reference, payment_amount, payment_method, payment_proof_url, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, pv.UserID, pv.Reference, pv.Amount, pv.Method, pv.ProofURL, pv.Status).
		Scan(&pv.ID, &pv.CreatedAt)
	logger.DatabaseResult("INSERT", 1, err, "paymentID", pv.ID)
	return err
}

func (r *paymentRepository) LatestByUser(ctx context.Context, userID string) (*domain.PaymentVerification, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_verifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`
	pv, err := scanPayment(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return pv, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]domain.PaymentVerification, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_verifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PaymentVerification
	for rows.Next() {
		pv, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *pv)
	}
	return payments, rows.Err()
}

func scanPayment(row rowScanner) (*domain.PaymentVerification, error) {
	pv := &domain.PaymentVerification{}
	var verifiedBy sql.NullString
	var verifiedAt sql.NullTime
	err := row.Scan(&pv.ID, &pv.UserID, &pv.Reference, &pv.Amount, &pv.Method,
		&pv.ProofURL, &pv.Status, &pv.Notes, &verifiedBy, &verifiedAt, &pv.CreatedAt)
	if err != nil {
		return nil, err
	}
	if verifiedBy.Valid {
		pv.VerifiedBy = &verifiedBy.String
	}
	if verifiedAt.Valid {
		t := verifiedAt.Time
		pv.VerifiedAt = &t
	}
	return pv, nil
}
