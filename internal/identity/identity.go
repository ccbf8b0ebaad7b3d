// Package identity wraps the authentication collaborator. The password
// credential is owned here (or by Firebase), never by the workflow core.
package identity

import (
	"context"
	"errors"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Provider is the identity collaborator: account creation, password
// verification and sign-out. Implementations: LocalProvider (bcrypt +
// credentials table) and FirebaseProvider (Firebase Auth).
type Provider interface {
	// SignUp creates a credential and returns the new opaque account id.
	SignUp(ctx context.Context, email, password, displayName, phone string) (string, error)
	// VerifyPassword checks the credential and returns the account id.
	VerifyPassword(ctx context.Context, email, password string) (string, error)
	// SignOut invalidates any provider-side session state. Best-effort.
	SignOut(ctx context.Context, accountID string) error
}
