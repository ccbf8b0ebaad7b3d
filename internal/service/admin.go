package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
)

type adminService struct {
	adminRepo     repository.AdminRepository
	applicantRepo repository.ApplicantRepository
	paymentRepo   repository.PaymentRepository
	reviewRepo    repository.ReviewRepository
	emailLogRepo  repository.EmailLogRepository
	dispatcher    NotificationDispatcher
	now           func() time.Time
}

func NewAdminService(
	adminRepo repository.AdminRepository,
	applicantRepo repository.ApplicantRepository,
	paymentRepo repository.PaymentRepository,
	reviewRepo repository.ReviewRepository,
	emailLogRepo repository.EmailLogRepository,
	dispatcher NotificationDispatcher,
) AdminService {
	return &adminService{
		adminRepo:     adminRepo,
		applicantRepo: applicantRepo,
		paymentRepo:   paymentRepo,
		reviewRepo:    reviewRepo,
		emailLogRepo:  emailLogRepo,
		dispatcher:    dispatcher,
		now:           time.Now,
	}
}

func (s *adminService) IsAdmin(ctx context.Context, callerID string) (bool, error) {
	return s.adminRepo.IsAdmin(ctx, callerID)
}

// requireAdmin gates every review operation on the membership lookup.
func (s *adminService) requireAdmin(ctx context.Context, callerID string) error {
	ok, err := s.adminRepo.IsAdmin(ctx, callerID)
	if err != nil {
		return fmt.Errorf("admin lookup failed: %w", err)
	}
	if !ok {
		return &domain.AuthorizationError{CallerID: callerID}
	}
	return nil
}

// ListPendingApplicants returns the full pending set, newest first, each
// applicant joined with their payment verification history.
func (s *adminService) ListPendingApplicants(ctx context.Context, adminID string) ([]domain.PendingApplicant, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	applicants, err := s.applicantRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]domain.PendingApplicant, 0, len(applicants))
	for _, a := range applicants {
		payments, err := s.paymentRepo.ListByUser(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		pending = append(pending, domain.PendingApplicant{Applicant: a, Payments: payments})
	}
	return pending, nil
}

// Approve commits the approval transaction, then dispatches the approval
// email. Dispatch failure is logged and swallowed: the transition stands.
func (s *adminService) Approve(ctx context.Context, applicantID, adminID string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	if err := s.reviewRepo.Approve(ctx, applicantID, adminID, s.now()); err != nil {
		return fmt.Errorf("failed to approve applicant: %w", err)
	}
	logger.Info("Applicant approved", "applicantID", applicantID, "adminID", adminID)

	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		logger.Error("Approved applicant lookup failed, skipping notification", "applicantID", applicantID, "error", err)
		return nil
	}

	subject, html := ApprovalEmail(applicant.FullName)
	if err := s.dispatcher.Dispatch(ctx, Notification{
		UserID:  applicant.ID,
		To:      applicant.Email,
		ToName:  applicant.FullName,
		Type:    domain.EmailTypeApproval,
		Subject: subject,
		HTML:    html,
	}); err != nil {
		logger.Warn("Approval notification failed", "applicantID", applicantID, "error", err)
	}
	return nil
}

// Reject refuses an empty reason outright; nothing is mutated in that case.
func (s *adminService) Reject(ctx context.Context, applicantID, reason, adminID string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.NewValidationError("rejection reason is required")
	}

	if err := s.reviewRepo.Reject(ctx, applicantID, adminID, reason, s.now()); err != nil {
		return fmt.Errorf("failed to reject applicant: %w", err)
	}
	logger.Info("Applicant rejected", "applicantID", applicantID, "adminID", adminID, "reason", reason)

	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		logger.Error("Rejected applicant lookup failed, skipping notification", "applicantID", applicantID, "error", err)
		return nil
	}

	subject, html := RejectionEmail(applicant.FullName, reason)
	if err := s.dispatcher.Dispatch(ctx, Notification{
		UserID:  applicant.ID,
		To:      applicant.Email,
		ToName:  applicant.FullName,
		Type:    domain.EmailTypeRejection,
		Subject: subject,
		HTML:    html,
	}); err != nil {
		logger.Warn("Rejection notification failed", "applicantID", applicantID, "error", err)
	}
	return nil
}

func (s *adminService) Notifications(ctx context.Context, adminID, applicantID string) ([]domain.EmailNotification, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return s.emailLogRepo.ListByUser(ctx, applicantID)
}
