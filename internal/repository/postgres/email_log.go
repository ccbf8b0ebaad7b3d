package postgres

import (
	"context"
	"database/sql"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
)

type emailLogRepository struct {
	db *sql.DB
}

func NewEmailLogRepository(db *sql.DB) repository.EmailLogRepository {
	return &emailLogRepository{db: db}
}

func (r *emailLogRepository) Create(ctx context.Context, n *domain.EmailNotification) error {
	logger.DatabaseCall("INSERT", "email_notifications", "userID", n.UserID, "type", n.EmailType, "status", n.Status)
	query := `INSERT INTO email_notifications (user_id, email_type, sent_to, subject, body, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, n.UserID, n.EmailType, n.SentTo, n.Subject, n.Body, n.Status).
		Scan(&n.ID, &n.CreatedAt)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)
	return err
}

func (r *emailLogRepository) ListByUser(ctx context.Context, userID string) ([]domain.EmailNotification, error) {
	query := `SELECT id, user_id, email_type, sent_to, subject, body, status, created_at
	          FROM email_notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.EmailNotification
	for rows.Next() {
		var n domain.EmailNotification
		if err := rows.Scan(&n.ID, &n.UserID, &n.EmailType, &n.SentTo, &n.Subject, &n.Body, &n.Status, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
