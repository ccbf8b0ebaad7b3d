package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
	"gkbc-backend/internal/storage"
)

// proofBucket is where payment proof images live in the object store.
const proofBucket = "payment-proofs"

type paymentService struct {
	applicantRepo repository.ApplicantRepository
	paymentRepo   repository.PaymentRepository
	objects       storage.ObjectStorage
	now           func() time.Time
}

func NewPaymentService(applicantRepo repository.ApplicantRepository, paymentRepo repository.PaymentRepository, objects storage.ObjectStorage) PaymentService {
	return &paymentService{
		applicantRepo: applicantRepo,
		paymentRepo:   paymentRepo,
		objects:       objects,
		now:           time.Now,
	}
}

// SubmitPayment records one payment claim. The proof image, when present, is
// uploaded first; an upload failure aborts the submission with nothing
// recorded. Resubmission after a rejection appends a fresh pending record.
func (s *paymentService) SubmitPayment(ctx context.Context, applicantID string, in PaymentSubmission) (*domain.PaymentVerification, error) {
	if in.Reference == "" {
		return nil, domain.NewValidationError("payment reference is required")
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return nil, domain.NewValidationError("payment amount must be greater than zero")
	}
	if in.Method == "" {
		in.Method = domain.PaymentMethodBankTransfer
	}
	if !domain.ValidPaymentMethod(in.Method) {
		return nil, domain.NewValidationError("unknown payment method: %s", in.Method)
	}

	var proofURL string
	if in.Proof != nil {
		key := fmt.Sprintf("%s-%d.jpg", applicantID, s.now().UnixMilli())
		contentType := in.ProofContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}
		url, err := s.objects.Upload(ctx, proofBucket, key, contentType, in.Proof)
		if err != nil {
			return nil, &domain.UploadError{Err: err}
		}
		proofURL = url
	}

	pv := &domain.PaymentVerification{
		UserID:    applicantID,
		Reference: in.Reference,
		Amount:    in.Amount,
		Method:    in.Method,
		ProofURL:  proofURL,
		Status:    domain.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, pv); err != nil {
		return nil, &domain.PersistenceError{Op: "create payment verification", Err: err}
	}

	logger.Info("Payment verification submitted", "applicantID", applicantID, "reference", in.Reference)

	// Re-fetch so the caller renders the authoritative pending state.
	latest, err := s.paymentRepo.LatestByUser(ctx, applicantID)
	if err != nil {
		return pv, nil
	}
	return latest, nil
}

// PaymentStatus re-derives the applicant-visible projection on each call:
// the approval fields from the applicant row plus the latest payment record.
func (s *paymentService) PaymentStatus(ctx context.Context, applicantID string) (*domain.PaymentProjection, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	proj := &domain.PaymentProjection{
		ApprovalStatus:  applicant.ApprovalStatus,
		PaymentVerified: applicant.PaymentVerified,
		RejectionReason: applicant.RejectionReason,
	}

	latest, err := s.paymentRepo.LatestByUser(ctx, applicantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return proj, nil
		}
		return nil, err
	}
	proj.Latest = latest
	return proj, nil
}
