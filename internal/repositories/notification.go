package repositories

import (
	"time"

	"remit/internal/models"

	"gorm.io/gorm"
)

// NotificationOutbox persists notification intents for the dispatcher.
type NotificationOutbox struct {
	db *gorm.DB
}

// NewNotificationOutbox creates an outbox bound to the given database.
func NewNotificationOutbox(db *gorm.DB) *NotificationOutbox {
	return &NotificationOutbox{db: db}
}

// Enqueue appends a pending notification row.
func (o *NotificationOutbox) Enqueue(n *models.Notification) error {
	return o.db.Create(n).Error
}

// PendingBatch returns up to limit undelivered notifications, oldest
// first.
func (o *NotificationOutbox) PendingBatch(limit int) ([]models.Notification, error) {
	var batch []models.Notification
	err := o.db.Where("status = ?", models.NotificationStatusPending).
		Order("created_at ASC").Limit(limit).Find(&batch).Error
	return batch, err
}

// MarkSent records a successful delivery.
func (o *NotificationOutbox) MarkSent(n *models.Notification) error {
	now := time.Now()
	return o.db.Model(n).Updates(map[string]interface{}{
		"status":   models.NotificationStatusSent,
		"sent_at":  &now,
		"attempts": gorm.Expr("attempts + 1"),
	}).Error
}

// MarkFailed counts a failed delivery attempt. Rows under the attempt
// cap stay pending so the dispatcher picks them up again.
func (o *NotificationOutbox) MarkFailed(n *models.Notification, maxAttempts int) error {
	status := models.NotificationStatusPending
	if n.Attempts+1 >= maxAttempts {
		status = models.NotificationStatusFailed
	}
	return o.db.Model(n).Updates(map[string]interface{}{
		"status":   status,
		"attempts": gorm.Expr("attempts + 1"),
	}).Error
}
