package models

import "time"

// Notification delivery statuses
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

// Notification is an outbox row. The saga writes it in the same step
// that finalizes the operation; the dispatcher delivers it later with
// at-least-once semantics.
type Notification struct {
	ID        uint   `gorm:"primarykey"`
	Email     string `gorm:"not null;index"`
	Message   string `gorm:"not null"`
	Origin    string `gorm:"not null"` // originating application tag
	Status    string `gorm:"not null;default:'pending';index"`
	Attempts  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	SentAt    *time.Time
}
