package ports

import (
	"context"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

// Mailer delivers an email through an external transport.
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}

// Notifier accepts notifications for asynchronous delivery.
type Notifier interface {
	Enqueue(n domain.Notification)
}

// NotificationService delivers a single notification, deduplicating repeats.
type NotificationService interface {
	Deliver(ctx context.Context, n domain.Notification) error
}
