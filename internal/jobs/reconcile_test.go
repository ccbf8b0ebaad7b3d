package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"gkbc-backend/internal/config"
	"gkbc-backend/internal/domain"
)

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

func TestJobRunner_ReconcileApprovals(t *testing.T) {
	t.Run("RepairsOrphans", func(t *testing.T) {
		mockReviews := new(MockReviewRepo)
		jr := NewJobRunner(mockReviews, &config.Config{})

		admin := "admin-1"
		approvedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		mockReviews.On("ListOrphanedApprovals", mock.Anything).Return([]domain.Applicant{
			{ID: "acct-1", ApprovedBy: &admin, ApprovedAt: &approvedAt},
			{ID: "acct-2"}, // legacy row without an approver recorded
		}, nil).Once()
		mockReviews.On("Approve", mock.Anything, "acct-1", "admin-1", approvedAt).Return(nil).Once()
		mockReviews.On("Approve", mock.Anything, "acct-2", "acct-2", mock.Anything).Return(nil).Once()

		jr.ReconcileApprovals()
		mockReviews.AssertExpectations(t)
	})

	t.Run("ContinuesPastRepairFailure", func(t *testing.T) {
		mockReviews := new(MockReviewRepo)
		jr := NewJobRunner(mockReviews, &config.Config{})

		admin := "admin-1"
		at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		mockReviews.On("ListOrphanedApprovals", mock.Anything).Return([]domain.Applicant{
			{ID: "acct-1", ApprovedBy: &admin, ApprovedAt: &at},
			{ID: "acct-2", ApprovedBy: &admin, ApprovedAt: &at},
		}, nil).Once()
		mockReviews.On("Approve", mock.Anything, "acct-1", "admin-1", at).Return(errors.New("db timeout")).Once()
		mockReviews.On("Approve", mock.Anything, "acct-2", "admin-1", at).Return(nil).Once()

		jr.ReconcileApprovals()
		mockReviews.AssertExpectations(t)
	})

	t.Run("NothingToRepair", func(t *testing.T) {
		mockReviews := new(MockReviewRepo)
		jr := NewJobRunner(mockReviews, &config.Config{})

		mockReviews.On("ListOrphanedApprovals", mock.Anything).Return([]domain.Applicant{}, nil).Once()

		jr.ReconcileApprovals()
		mockReviews.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
