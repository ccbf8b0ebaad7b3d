package jobs

import (
	"context"
	"time"

	"gkbc-backend/internal/config"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	reviewRepo repository.ReviewRepository
	config     *config.Config
}

func NewJobRunner(reviewRepo repository.ReviewRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		reviewRepo: reviewRepo,
		config:     cfg,
	}
}

// Config exposes the configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// ReconcileApprovals repairs applicants whose approval landed without the
// matching payment verification write. Such pairs predate the transactional
// review path; replaying the approval converges them on the consistent state.
func (jr *JobRunner) ReconcileApprovals() {
	jr.runWithRecovery("ReconcileApprovals", jr.reconcileApprovals)
}

func (jr *JobRunner) reconcileApprovals() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	orphans, err := jr.reviewRepo.ListOrphanedApprovals(ctx)
	if err != nil {
		logger.Error("Failed to list orphaned approvals", "error", err)
		return
	}
	if len(orphans) == 0 {
		logger.Info("No orphaned approvals found")
		return
	}

	repaired := 0
	for _, applicant := range orphans {
		adminID := applicant.ID
		if applicant.ApprovedBy != nil {
			adminID = *applicant.ApprovedBy
		}
		at := time.Now()
		if applicant.ApprovedAt != nil {
			at = *applicant.ApprovedAt
		}

		if err := jr.reviewRepo.Approve(ctx, applicant.ID, adminID, at); err != nil {
			logger.Error("Failed to repair orphaned approval", "applicantID", applicant.ID, "error", err)
			continue
		}
		repaired++
	}

	logger.Info("Orphaned approvals reconciled", "found", len(orphans), "repaired", repaired)
}
