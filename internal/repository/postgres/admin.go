package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) IsAdmin(ctx context.Context, id string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM admin_users WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	a := &domain.AdminUser{}
	var createdOn time.Time
	query := `SELECT id, email, name, created_on FROM admin_users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Email, &a.Name, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	return a, nil
}
