package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"gkbc-backend/internal/domain"
)

func TestAdminRepository_IsAdmin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewAdminRepository(db)
	ctx := context.Background()

	t.Run("Member", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM admin_users WHERE id = \\$1").
			WithArgs("admin-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		ok, err := repo.IsAdmin(ctx, "admin-1")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NonMember", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM admin_users WHERE id = \\$1").
			WithArgs("acct-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		ok, err := repo.IsAdmin(ctx, "acct-1")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailLogRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewEmailLogRepository(db)
	ctx := context.Background()

	n := &domain.EmailNotification{
		UserID:    "acct-1",
		EmailType: domain.EmailTypeApproval,
		SentTo:    "grace@example.com",
		Subject:   "GKBC Registration Approved! 🎉",
		Body:      "<p>Dear Grace Kim,</p>",
		Status:    domain.EmailStatusSent,
	}

	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO email_notifications").
		WithArgs(n.UserID, n.EmailType, n.SentTo, n.Subject, n.Body, n.Status).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))

	err = repo.Create(ctx, n)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailLogRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewEmailLogRepository(db)
	ctx := context.Background()

	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM email_notifications WHERE user_id = \\$1").
		WithArgs("acct-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email_type", "sent_to", "subject", "body", "status", "created_at"}).
			AddRow(2, "acct-1", "rejection", "grace@example.com", "GKBC Registration - Payment Verification Issue", "<p></p>", "failed", created).
			AddRow(1, "acct-1", "approval", "grace@example.com", "GKBC Registration Approved! 🎉", "<p></p>", "sent", created))

	notes, err := repo.ListByUser(ctx, "acct-1")
	assert.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Equal(t, domain.EmailStatusFailed, notes[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
