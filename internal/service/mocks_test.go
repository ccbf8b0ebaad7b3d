package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"gkbc-backend/internal/domain"
)

// MockApplicantRepo
type MockApplicantRepo struct {
	mock.Mock
}

func (m *MockApplicantRepo) Create(ctx context.Context, a *domain.Applicant) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockApplicantRepo) GetByID(ctx context.Context, id string) (*domain.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) GetByEmail(ctx context.Context, email string) (*domain.Applicant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) UpdateProfile(ctx context.Context, a *domain.Applicant) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockApplicantRepo) ListPending(ctx context.Context) ([]domain.Applicant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) ListApproved(ctx context.Context) ([]domain.Applicant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, pv *domain.PaymentVerification) error {
	args := m.Called(ctx, pv)
	return args.Error(0)
}
func (m *MockPaymentRepo) LatestByUser(ctx context.Context, userID string) (*domain.PaymentVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentVerification), args.Error(1)
}
func (m *MockPaymentRepo) ListByUser(ctx context.Context, userID string) ([]domain.PaymentVerification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PaymentVerification), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Approve(ctx context.Context, applicantID, adminID string, at time.Time) error {
	args := m.Called(ctx, applicantID, adminID, at)
	return args.Error(0)
}
func (m *MockReviewRepo) Reject(ctx context.Context, applicantID, adminID, reason string, at time.Time) error {
	args := m.Called(ctx, applicantID, adminID, reason, at)
	return args.Error(0)
}
func (m *MockReviewRepo) ListOrphanedApprovals(ctx context.Context) ([]domain.Applicant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

// MockEmailLogRepo
type MockEmailLogRepo struct {
	mock.Mock
}

func (m *MockEmailLogRepo) Create(ctx context.Context, n *domain.EmailNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockEmailLogRepo) ListByUser(ctx context.Context, userID string) ([]domain.EmailNotification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.EmailNotification), args.Error(1)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) IsAdmin(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockAdminRepo) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

// MockIdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) SignUp(ctx context.Context, email, password, displayName, phone string) (string, error) {
	args := m.Called(ctx, email, password, displayName, phone)
	return args.String(0), args.Error(1)
}
func (m *MockIdentityProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
func (m *MockIdentityProvider) SignOut(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, bucket, key, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, bucket, key, contentType, r)
	return args.String(0), args.Error(1)
}
func (m *MockObjectStorage) Delete(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}
func (m *MockObjectStorage) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// MockEmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to, toName, subject, html string) error {
	args := m.Called(ctx, to, toName, subject, html)
	return args.Error(0)
}

// MockDispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, n Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
