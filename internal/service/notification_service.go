package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/hospital-staff-service/internal/events"
	"github.com/spec-kit/hospital-staff-service/internal/mailer"
	"github.com/spec-kit/hospital-staff-service/internal/observability"
)

// NotificationService emails credentials to freshly provisioned staff. It is
// strictly best-effort: delivery failures are logged and counted, never
// propagated and never retried.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mailer.Mailer
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, m mailer.Mailer, logger *zap.Logger, metrics *observability.Metrics) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     m,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStaffProvisioned, n.handleStaffProvisioned)
}

func (n *NotificationService) handleStaffProvisioned(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.StaffProvisionedPayload)
	if !ok {
		n.logger.Warn("unexpected payload on staff_provisioned event", zap.String("event_id", event.ID))
		return nil
	}

	msg := credentialsEmail(payload)
	if err := n.mailer.Send(ctx, msg); err != nil {
		n.metrics.RecordNotification("failed")
		n.logger.Warn("credential email delivery failed",
			zap.String("event_id", event.ID),
			zap.String("staff_id", payload.StaffID),
			zap.Error(err),
		)
		return nil
	}

	n.metrics.RecordNotification("sent")
	n.logger.Info("credential email sent",
		zap.String("event_id", event.ID),
		zap.String("staff_id", payload.StaffID),
	)
	return nil
}

// credentialsEmail renders the fixed plain-text template. The body carries
// the one-time plaintext password; it goes to the mail relay and nowhere
// else.
func credentialsEmail(p events.StaffProvisionedPayload) mailer.Message {
	body := fmt.Sprintf(`Hi %s,

Your account has been created on the Medical Imaging Diagnostic Assistant. Here are your login details:

Email: %s
Password: %s

Hospital: %s

Please log in and change your password as soon as possible.

Happy reporting!

Regards,
%s Admin
`, p.StaffName, p.StaffEmail, p.Password, p.HospitalName, p.HospitalName)

	return mailer.Message{
		To:      p.StaffEmail,
		Subject: "Your Staff Account Details",
		Body:    body,
	}
}
