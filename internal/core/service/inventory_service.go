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

type InventoryService struct {
	repo       ports.InventoryRepository
	notifier   ports.Notifier
	recipients []string
	log        zerolog.Logger
}

// NewInventoryService returns an InventoryService. notifier may be nil, in
// which case low-stock alerts are not sent.
func NewInventoryService(repo ports.InventoryRepository, notifier ports.Notifier, recipients []string, log zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, notifier: notifier, recipients: recipients, log: log}
}

func (s *InventoryService) Create(ctx context.Context, in ports.ItemInput) (*domain.InventoryItem, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item, err := s.repo.Create(ctx, &domain.InventoryItem{
		Name:         strings.TrimSpace(in.Name),
		SKU:          normalizeSKU(in.SKU),
		Category:     strings.TrimSpace(in.Category),
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		ReorderLevel: in.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("item_id", item.ID).Str("sku", item.SKU).Msg("inventory item created")
	return item, nil
}

func (s *InventoryService) Get(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InventoryService) List(ctx context.Context, filter ports.InventoryFilter) ([]*domain.InventoryItem, error) {
	return s.repo.List(ctx, filter)
}

func (s *InventoryService) Update(ctx context.Context, id string, in ports.ItemInput) (*domain.InventoryItem, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}

	updated := &domain.InventoryItem{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		SKU:          normalizeSKU(in.SKU),
		Category:     strings.TrimSpace(in.Category),
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		ReorderLevel: in.ReorderLevel,
		UpdatedAt:    time.Now().UTC(),
	}

	// The crossing check compares against the document this write replaced,
	// not an earlier read that a concurrent Adjust may have outdated.
	previous, err := s.repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	updated.CreatedAt = previous.CreatedAt

	if !previous.BelowReorderLevel() && updated.BelowReorderLevel() {
		s.notifyLowStock(updated)
	}
	return updated, nil
}

// Adjust adds delta to the stock level. Dropping below the reorder level
// queues a low-stock notification.
func (s *InventoryService) Adjust(ctx context.Context, id string, delta int) (*domain.InventoryItem, error) {
	if delta == 0 {
		return s.repo.FindByID(ctx, id)
	}

	item, err := s.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	if delta < 0 && item.BelowReorderLevel() {
		s.notifyLowStock(item)
	}
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("item_id", id).Msg("inventory item deleted")
	return nil
}

func (s *InventoryService) notifyLowStock(item *domain.InventoryItem) {
	if s.notifier == nil || len(s.recipients) == 0 {
		return
	}

	s.notifier.Enqueue(domain.Notification{
		Kind:   domain.NotifyLowStock,
		ItemID: item.ID,
		// One alert per item per day.
		RefID: time.Now().UTC().Format(time.DateOnly),
		Message: domain.Email{
			To:      s.recipients,
			Subject: fmt.Sprintf("Low stock: %s (%s)", item.Name, item.SKU),
			Text: fmt.Sprintf("%s is down to %d units (reorder level %d).",
				item.Name, item.Quantity, item.ReorderLevel),
		},
	})
}

func validateItem(in ports.ItemInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.SKU) == "" {
		return domain.ErrInvalidItem
	}
	if in.Quantity < 0 || in.ReorderLevel < 0 || in.UnitPrice < 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

func normalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
