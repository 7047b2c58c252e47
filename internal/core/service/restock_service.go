package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/ports"
)

type RestockService struct {
	restocks   ports.RestockRepository
	items      ports.InventoryRepository
	notifier   ports.Notifier
	recipients []string
	log        zerolog.Logger
}

func NewRestockService(
	restocks ports.RestockRepository,
	items ports.InventoryRepository,
	notifier ports.Notifier,
	recipients []string,
	log zerolog.Logger,
) *RestockService {
	return &RestockService{
		restocks:   restocks,
		items:      items,
		notifier:   notifier,
		recipients: recipients,
		log:        log,
	}
}

// Request records a pending restock for an existing item and queues a
// notification for the configured recipients.
func (s *RestockService) Request(ctx context.Context, in ports.RestockInput) (*domain.Restock, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.RequestedBy == "" {
		return nil, domain.ErrForbidden
	}

	item, err := s.items.FindByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	restock, err := s.restocks.Create(ctx, &domain.Restock{
		ItemID:      item.ID,
		Quantity:    in.Quantity,
		Supplier:    strings.TrimSpace(in.Supplier),
		RequestedBy: in.RequestedBy,
		Status:      domain.RestockPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("request restock: %w", err)
	}

	s.log.Info().
		Str("restock_id", restock.ID).
		Str("item_id", item.ID).
		Int("quantity", restock.Quantity).
		Msg("restock requested")

	if s.notifier != nil && len(s.recipients) > 0 {
		s.notifier.Enqueue(domain.Notification{
			Kind:   domain.NotifyRestock,
			ItemID: item.ID,
			RefID:  restock.ID,
			Message: domain.Email{
				To:      s.recipients,
				Subject: fmt.Sprintf("Restock requested: %s (%s)", item.Name, item.SKU),
				Text: fmt.Sprintf("%d units of %s requested from %s.",
					restock.Quantity, item.Name, supplierOrDefault(restock.Supplier)),
			},
		})
	}

	return restock, nil
}

func (s *RestockService) List(ctx context.Context, status domain.RestockStatus) ([]*domain.Restock, error) {
	return s.restocks.List(ctx, status)
}

// Receive marks a pending restock as received and adds its quantity to stock.
// When the stock update fails the restock is reopened so it can be received
// again.
func (s *RestockService) Receive(ctx context.Context, id string) (*domain.Restock, error) {
	restock, err := s.restocks.MarkReceived(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if _, err := s.items.AdjustQuantity(ctx, restock.ItemID, restock.Quantity); err != nil {
		if rerr := s.restocks.Reopen(ctx, restock.ID); rerr != nil {
			s.log.Error().Err(rerr).
				AnErr("adjust_err", err).
				Str("restock_id", restock.ID).
				Str("item_id", restock.ItemID).
				Msg("restock received but stock not updated and reopen failed")
		} else {
			s.log.Warn().Err(err).
				Str("restock_id", restock.ID).
				Str("item_id", restock.ItemID).
				Msg("stock not updated, restock reopened")
		}
		return nil, fmt.Errorf("receive restock: %w", err)
	}

	s.log.Info().Str("restock_id", restock.ID).Str("item_id", restock.ItemID).Msg("restock received")
	return restock, nil
}

func supplierOrDefault(supplier string) string {
	if supplier == "" {
		return "the default supplier"
	}
	return supplier
}
