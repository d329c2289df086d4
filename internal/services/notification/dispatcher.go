package notification

import (
	"context"
	"log"
	"time"

	"remit/internal/models"
)

// Dispatcher defaults
const (
	DefaultInterval    = 5 * time.Second
	DefaultBatchSize   = 50
	DefaultMaxAttempts = 5
)

// Sender delivers one message to the notification sink.
type Sender interface {
	Notify(ctx context.Context, email, message, origin string) error
}

// OutboxReader is the dispatcher's side of the outbox.
type OutboxReader interface {
	PendingBatch(limit int) ([]models.Notification, error)
	MarkSent(n *models.Notification) error
	MarkFailed(n *models.Notification, maxAttempts int) error
}

// Dispatcher polls the outbox and pushes pending rows to the sink.
// Delivery is at-least-once: a row is re-picked until it is acked or
// runs out of attempts.
type Dispatcher struct {
	outbox      OutboxReader
	sender      Sender
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

// NewDispatcher creates a dispatcher with the default polling settings.
func NewDispatcher(outbox OutboxReader, sender Sender) *Dispatcher {
	return &Dispatcher{
		outbox:      outbox,
		sender:      sender,
		interval:    DefaultInterval,
		batchSize:   DefaultBatchSize,
		maxAttempts: DefaultMaxAttempts,
	}
}

// Run polls until the context is cancelled. Meant to be started as a
// goroutine from main.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Drain(ctx)
		}
	}
}

// Drain delivers one batch of pending notifications.
func (d *Dispatcher) Drain(ctx context.Context) {
	batch, err := d.outbox.PendingBatch(d.batchSize)
	if err != nil {
		log.Printf("failed to read notification outbox: %v", err)
		return
	}
	for i := range batch {
		n := &batch[i]
		if err := d.sender.Notify(ctx, n.Email, n.Message, n.Origin); err != nil {
			log.Printf("notification %d delivery failed: %v", n.ID, err)
			if err := d.outbox.MarkFailed(n, d.maxAttempts); err != nil {
				log.Printf("failed to mark notification %d: %v", n.ID, err)
			}
			continue
		}
		if err := d.outbox.MarkSent(n); err != nil {
			log.Printf("failed to mark notification %d sent: %v", n.ID, err)
		}
	}
}
