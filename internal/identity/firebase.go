package identity

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"gkbc-backend/internal/logger"
)

// FirebaseProvider backs account provisioning with Firebase Auth. Password
// verification is not available to the Admin SDK; clients authenticate with
// Firebase directly and present an ID token, which VerifyIDToken validates.
type FirebaseProvider struct {
	client *auth.Client
}

func NewFirebaseProvider(ctx context.Context, credentialsFile string) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}
	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password, displayName, phone string) (string, error) {
	logger.ExternalServiceCall("firebase", "CreateUser", "email", email)
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	if phone != "" {
		params = params.PhoneNumber(phone)
	}

	user, err := p.client.CreateUser(ctx, params)
	logger.ExternalServiceResult("firebase", "CreateUser", err)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	return user.UID, nil
}

func (p *FirebaseProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	// Password sign-in happens on the client SDK against Firebase; the
	// backend only validates the resulting ID token.
	return "", errors.New("password sign-in is handled by the Firebase client SDK")
}

// VerifyIDToken validates a Firebase ID token and returns the account id.
func (p *FirebaseProvider) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return token.UID, nil
}

func (p *FirebaseProvider) SignOut(ctx context.Context, accountID string) error {
	logger.ExternalServiceCall("firebase", "RevokeRefreshTokens", "accountID", accountID)
	err := p.client.RevokeRefreshTokens(ctx, accountID)
	logger.ExternalServiceResult("firebase", "RevokeRefreshTokens", err)
	return err
}
