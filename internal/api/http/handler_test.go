package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/security"
	"gkbc-backend/internal/service"
)

// MockRegistrationService
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) SignUp(ctx context.Context, in service.SignUpInput) (*domain.Applicant, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockRegistrationService) Login(ctx context.Context, email, password string) (*domain.Applicant, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.Applicant), args.String(1), args.String(2), args.Error(3)
}
func (m *MockRegistrationService) Logout(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
func (m *MockRegistrationService) Profile(ctx context.Context, accountID string) (*domain.Applicant, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) SubmitPayment(ctx context.Context, applicantID string, in service.PaymentSubmission) (*domain.PaymentVerification, error) {
	args := m.Called(ctx, applicantID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentVerification), args.Error(1)
}
func (m *MockPaymentService) PaymentStatus(ctx context.Context, applicantID string) (*domain.PaymentProjection, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentProjection), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) IsAdmin(ctx context.Context, callerID string) (bool, error) {
	args := m.Called(ctx, callerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAdminService) ListPendingApplicants(ctx context.Context, adminID string) ([]domain.PendingApplicant, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingApplicant), args.Error(1)
}
func (m *MockAdminService) Approve(ctx context.Context, applicantID, adminID string) error {
	args := m.Called(ctx, applicantID, adminID)
	return args.Error(0)
}
func (m *MockAdminService) Reject(ctx context.Context, applicantID, reason, adminID string) error {
	args := m.Called(ctx, applicantID, reason, adminID)
	return args.Error(0)
}
func (m *MockAdminService) Notifications(ctx context.Context, adminID, applicantID string) ([]domain.EmailNotification, error) {
	args := m.Called(ctx, adminID, applicantID)
	return args.Get(0).([]domain.EmailNotification), args.Error(1)
}

// MockMemberService
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) ListMembers(ctx context.Context) ([]domain.Applicant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Applicant), args.Error(1)
}
func (m *MockMemberService) GetMember(ctx context.Context, id string) (*domain.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

const testSecret = "handler-test-secret-0123456789abcd"

func newTestRouter(reg *MockRegistrationService, pay *MockPaymentService, adm *MockAdminService, mem *MockMemberService) (http.Handler, security.TokenManager) {
	tokens := security.NewTokenManager(testSecret, 60, 0)
	router := NewRouter(RouterDeps{
		Auth:    NewAuthHandler(reg),
		Payment: NewPaymentHandler(pay),
		Admin:   NewAdminHandler(adm),
		Member:  NewMemberHandler(mem),
		AuthMW:  NewAuthMiddleware(tokens, adm),
	})
	return router, tokens
}

func bearerFor(t *testing.T, tokens security.TokenManager, accountID string) string {
	t.Helper()
	token, err := tokens.GenerateAccessToken(accountID, accountID+"@example.com")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		reg := new(MockRegistrationService)
		router, _ := newTestRouter(reg, new(MockPaymentService), new(MockAdminService), new(MockMemberService))

		reg.On("SignUp", mock.Anything, mock.MatchedBy(func(in service.SignUpInput) bool {
			return in.Email == "grace@example.com" && in.FirstName == "Grace"
		})).Return(&domain.Applicant{ID: "acct-1", ApprovalStatus: domain.ApprovalStatusPending}, nil).Once()

		body := `{"first_name":"Grace","last_name":"Kim","email":"grace@example.com","phone":"+1","password":"secret6","confirm_password":"secret6"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Applicant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "acct-1", got.ID)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		reg := new(MockRegistrationService)
		router, _ := newTestRouter(reg, new(MockPaymentService), new(MockAdminService), new(MockMemberService))

		reg.On("SignUp", mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("passwords do not match")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "passwords do not match")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		router, _ := newTestRouter(new(MockRegistrationService), new(MockPaymentService), new(MockAdminService), new(MockMemberService))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("MissingHeader", func(t *testing.T) {
		router, _ := newTestRouter(new(MockRegistrationService), new(MockPaymentService), new(MockAdminService), new(MockMemberService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		router, _ := newTestRouter(new(MockRegistrationService), new(MockPaymentService), new(MockAdminService), new(MockMemberService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RefreshTokenRefused", func(t *testing.T) {
		adm := new(MockAdminService)
		router, tokens := newTestRouter(new(MockRegistrationService), new(MockPaymentService), adm, new(MockMemberService))

		refresh, err := tokens.GenerateRefreshToken("acct-1", "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		reg := new(MockRegistrationService)
		adm := new(MockAdminService)
		router, tokens := newTestRouter(reg, new(MockPaymentService), adm, new(MockMemberService))

		adm.On("IsAdmin", mock.Anything, "acct-1").Return(false, nil).Once()
		reg.On("Profile", mock.Anything, "acct-1").
			Return(&domain.Applicant{ID: "acct-1", ApprovalStatus: domain.ApprovalStatusPending}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", bearerFor(t, tokens, "acct-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_admin":false`)
	})
}

func TestPaymentHandler_Submit(t *testing.T) {
	pay := new(MockPaymentService)
	adm := new(MockAdminService)
	router, tokens := newTestRouter(new(MockRegistrationService), pay, adm, new(MockMemberService))

	adm.On("IsAdmin", mock.Anything, "acct-1").Return(false, nil).Once()
	pay.On("SubmitPayment", mock.Anything, "acct-1", mock.MatchedBy(func(in service.PaymentSubmission) bool {
		return in.Reference == "TXN-1" && in.Amount == 50 && in.Proof != nil
	})).Return(&domain.PaymentVerification{ID: 7, Status: domain.PaymentStatusPending}, nil).Once()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("reference", "TXN-1"))
	require.NoError(t, w.WriteField("amount", "50"))
	require.NoError(t, w.WriteField("method", "bank_transfer"))
	part, err := w.CreateFormFile("proof", "proof.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", bearerFor(t, tokens, "acct-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	pay.AssertExpectations(t)
}

func TestAdminHandler_ErrorMapping(t *testing.T) {
	t.Run("NonAdminForbidden", func(t *testing.T) {
		adm := new(MockAdminService)
		router, tokens := newTestRouter(new(MockRegistrationService), new(MockPaymentService), adm, new(MockMemberService))

		adm.On("IsAdmin", mock.Anything, "acct-2").Return(false, nil).Once()
		adm.On("Approve", mock.Anything, "acct-1", "acct-2").
			Return(&domain.AuthorizationError{CallerID: "acct-2"}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/applicants/acct-1/approve", nil)
		req.Header.Set("Authorization", bearerFor(t, tokens, "acct-2"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("UnknownApplicantNotFound", func(t *testing.T) {
		adm := new(MockAdminService)
		router, tokens := newTestRouter(new(MockRegistrationService), new(MockPaymentService), adm, new(MockMemberService))

		adm.On("IsAdmin", mock.Anything, "admin-1").Return(true, nil).Once()
		adm.On("Approve", mock.Anything, "ghost", "admin-1").Return(domain.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/applicants/ghost/approve", nil)
		req.Header.Set("Authorization", bearerFor(t, tokens, "admin-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("RejectWithReason", func(t *testing.T) {
		adm := new(MockAdminService)
		router, tokens := newTestRouter(new(MockRegistrationService), new(MockPaymentService), adm, new(MockMemberService))

		adm.On("IsAdmin", mock.Anything, "admin-1").Return(true, nil).Once()
		adm.On("Reject", mock.Anything, "acct-1", "blurry proof", "admin-1").Return(nil).Once()

		body := `{"reason":"blurry proof"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/applicants/acct-1/reject", strings.NewReader(body))
		req.Header.Set("Authorization", bearerFor(t, tokens, "admin-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		adm.AssertExpectations(t)
	})
}
