// Package notification records notification intents in a durable
// outbox and delivers them to the notification sink in the background.
// The sagas only ever enqueue; delivery never blocks an operation.
package notification

import (
	"context"

	"remit/internal/models"
)

// OriginTag marks every message this application produces.
const OriginTag = "remit"

// Outbox is the durable queue the service writes to.
type Outbox interface {
	Enqueue(n *models.Notification) error
}

// Service implements operation.Notifier over the outbox.
type Service struct {
	outbox Outbox
}

// NewService creates a notification service.
func NewService(outbox Outbox) *Service {
	return &Service{outbox: outbox}
}

// Publish records the intent to notify an email address. Delivery
// happens later, from the dispatcher.
func (s *Service) Publish(_ context.Context, email, message string) error {
	return s.outbox.Enqueue(&models.Notification{
		Email:   email,
		Message: message,
		Origin:  OriginTag,
		Status:  models.NotificationStatusPending,
	})
}
