package service

import (
	"context"
	"fmt"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository"
)

type emailDispatcher struct {
	sender EmailSender
	logs   repository.EmailLogRepository
}

func NewEmailDispatcher(sender EmailSender, logs repository.EmailLogRepository) NotificationDispatcher {
	return &emailDispatcher{sender: sender, logs: logs}
}

// Dispatch sends the email and records the attempt. The audit row is written
// for failures as well, so the admin notification history shows both outcomes.
func (d *emailDispatcher) Dispatch(ctx context.Context, n Notification) error {
	sendErr := d.sender.Send(ctx, n.To, n.ToName, n.Subject, n.HTML)

	status := domain.EmailStatusSent
	if sendErr != nil {
		status = domain.EmailStatusFailed
		logger.Error("Email delivery failed", "to", n.To, "type", n.Type, "error", sendErr)
	}

	record := &domain.EmailNotification{
		UserID:    n.UserID,
		EmailType: n.Type,
		SentTo:    n.To,
		Subject:   n.Subject,
		Body:      n.HTML,
		Status:    status,
	}
	if err := d.logs.Create(ctx, record); err != nil {
		logger.Error("Email audit write failed", "to", n.To, "type", n.Type, "error", err)
	}

	if sendErr != nil {
		return &domain.NotificationError{Err: sendErr}
	}
	return nil
}

// ApprovalEmail renders the welcome email sent when an applicant is approved.
func ApprovalEmail(fullName string) (subject, html string) {
	subject = "GKBC Registration Approved! 🎉"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>Congratulations! Your GKBC membership registration has been approved and your payment has been verified.</p>
<p>You now have full access to the member directory and community features. Welcome to the community!</p>
<p>Best regards,<br>The GKBC Team</p>`, fullName)
	return subject, html
}

// RejectionEmail renders the notice sent when a payment claim is rejected.
func RejectionEmail(fullName, reason string) (subject, html string) {
	subject = "GKBC Registration - Payment Verification Issue"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>We were unable to verify the payment for your GKBC membership registration.</p>
<p>Reason: %s</p>
<p>Please review the details above and submit your payment information again. If you believe this is a mistake, reply to this email and we will take another look.</p>
<p>Best regards,<br>The GKBC Team</p>`, fullName, reason)
	return subject, html
}
