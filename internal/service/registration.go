package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/identity"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
	"gkbc-backend/internal/security"
)

type registrationService struct {
	applicantRepo repository.ApplicantRepository
	provider      identity.Provider
	tokens        security.TokenManager
}

func NewRegistrationService(applicantRepo repository.ApplicantRepository, provider identity.Provider, tokens security.TokenManager) RegistrationService {
	return &registrationService{
		applicantRepo: applicantRepo,
		provider:      provider,
		tokens:        tokens,
	}
}

// SignUp validates the registration form, creates the credential with the
// identity provider and persists the applicant in the pending state. All
// validation runs before any collaborator call.
func (s *registrationService) SignUp(ctx context.Context, in SignUpInput) (*domain.Applicant, error) {
	if err := validateSignUp(in); err != nil {
		return nil, err
	}

	fullName := fmt.Sprintf("%s %s", strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName))

	accountID, err := s.provider.SignUp(ctx, in.Email, in.Password, fullName, in.Phone)
	if err != nil {
		return nil, &domain.AuthError{Err: err}
	}

	applicant := &domain.Applicant{
		ID:              accountID,
		Email:           in.Email,
		FullName:        fullName,
		Phone:           in.Phone,
		ApprovalStatus:  domain.ApprovalStatusPending,
		PaymentVerified: false,
	}
	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		return nil, &domain.PersistenceError{Op: "create applicant", Err: err}
	}

	logger.Info("Applicant registered", "applicantID", applicant.ID)
	return applicant, nil
}

func validateSignUp(in SignUpInput) error {
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return domain.NewValidationError("first name is required")
	case strings.TrimSpace(in.LastName) == "":
		return domain.NewValidationError("last name is required")
	case strings.TrimSpace(in.Email) == "":
		return domain.NewValidationError("email is required")
	case strings.TrimSpace(in.Phone) == "":
		return domain.NewValidationError("phone is required")
	case in.Password == "":
		return domain.NewValidationError("password is required")
	case in.Password != in.ConfirmPassword:
		return domain.NewValidationError("passwords do not match")
	case len(in.Password) < 6:
		return domain.NewValidationError("password must be at least 6 characters")
	}
	return nil
}

func (s *registrationService) Login(ctx context.Context, email, password string) (*domain.Applicant, string, string, error) {
	accountID, err := s.provider.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", &domain.AuthError{Err: err}
	}

	applicant, err := s.applicantRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", &domain.AuthError{Err: identity.ErrInvalidCredentials}
		}
		return nil, "", "", err
	}

	access, err := s.tokens.GenerateAccessToken(accountID, applicant.Email)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(accountID, applicant.Email)
	if err != nil {
		return nil, "", "", err
	}

	return applicant, access, refresh, nil
}

func (s *registrationService) Logout(ctx context.Context, accountID string) error {
	if err := s.provider.SignOut(ctx, accountID); err != nil {
		logger.Warn("Provider sign-out failed", "accountID", accountID, "error", err)
	}
	return nil
}

func (s *registrationService) Profile(ctx context.Context, accountID string) (*domain.Applicant, error) {
	return s.applicantRepo.GetByID(ctx, accountID)
}
