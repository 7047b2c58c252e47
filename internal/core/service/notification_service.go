package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type notificationService struct {
	mailer ports.Mailer
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(mailer ports.Mailer, dedup DedupChecker, log zerolog.Logger) ports.NotificationService {
	return &notificationService{mailer: mailer, dedup: dedup, log: log}
}

// Deliver sends a notification unless an identical one was already sent.
func (s *notificationService) Deliver(ctx context.Context, n domain.Notification) error {
	key := n.DedupKey()

	// 1. Idempotency check. A broken store must not swallow notifications.
	isDup, err := s.dedup.IsDuplicate(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("dedup check failed, sending anyway")
	} else if isDup {
		s.log.Debug().Str("key", key).Msg("duplicate notification skipped")
		return nil
	}

	// 2. Hand off to the mail transport.
	if err := s.mailer.Send(ctx, n.Message); err != nil {
		return fmt.Errorf("deliver %s notification: %w", n.Kind, err)
	}

	// 3. Remember it only once it actually left.
	if err := s.dedup.Mark(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to set dedup key")
	}

	s.log.Info().
		Str("kind", string(n.Kind)).
		Str("item_id", n.ItemID).
		Int("recipients", len(n.Message.To)).
		Msg("notification sent")

	return nil
}
