package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gkbc-backend/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider stores bcrypt credentials in its own table. The workflow core
// never reads credentials; it only sees the opaque account id.
type LocalProvider struct {
	db *sql.DB
}

func NewLocalProvider(db *sql.DB) *LocalProvider {
	return &LocalProvider{db: db}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password, displayName, phone string) (string, error) {
	var count int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials WHERE LOWER(email) = LOWER($1)`, email).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("failed to check existing credential: %w", err)
	}
	if count > 0 {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	accountID := uuid.New().String()
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO credentials (account_id, email, password_hash, created_on) VALUES ($1, $2, $3, NOW())`,
		accountID, email, string(hash))
	if err != nil {
		return "", fmt.Errorf("failed to store credential: %w", err)
	}

	logger.Debug("Credential created", "accountID", accountID)
	return accountID, nil
}

func (p *LocalProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	var accountID, hash string
	err := p.db.QueryRowContext(ctx,
		`SELECT account_id, password_hash FROM credentials WHERE LOWER(email) = LOWER($1)`, email).
		Scan(&accountID, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to load credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return accountID, nil
}

func (p *LocalProvider) SignOut(ctx context.Context, accountID string) error {
	// Sessions are stateless JWTs; nothing to invalidate provider-side.
	return nil
}
