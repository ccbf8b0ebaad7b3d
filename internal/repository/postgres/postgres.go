package postgres

import (
	"database/sql"

	"gkbc-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ApplicantRepository
	repository.PaymentRepository
	repository.ReviewRepository
	repository.EmailLogRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		ApplicantRepository: NewApplicantRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		ReviewRepository:    NewReviewRepository(db),
		EmailLogRepository:  NewEmailLogRepository(db),
		AdminRepository:     NewAdminRepository(db),
	}
}
