package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubInventoryRepo struct {
	items  map[string]*domain.InventoryItem
	nextID int
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[string]*domain.InventoryItem)}
}

func (r *stubInventoryRepo) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	for _, existing := range r.items {
		if existing.SKU == item.SKU {
			return nil, domain.ErrDuplicateSKU
		}
	}
	r.nextID++
	clone := *item
	clone.ID = "item-" + strconv.Itoa(r.nextID)
	r.items[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id string) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubInventoryRepo) List(_ context.Context, f ports.InventoryFilter) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for _, item := range r.items {
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if f.LowStock && !item.BelowReorderLevel() {
			continue
		}
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubInventoryRepo) Update(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	previous, ok := r.items[item.ID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	clone.CreatedAt = previous.CreatedAt
	r.items[item.ID] = &clone
	out := *previous
	return &out, nil
}

// restockingRepo raises the stored quantity right before each Update lands,
// as a concurrent Adjust would.
type restockingRepo struct {
	*stubInventoryRepo
	delta int
}

func (r *restockingRepo) Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if _, err := r.stubInventoryRepo.AdjustQuantity(ctx, item.ID, r.delta); err != nil {
		return nil, err
	}
	return r.stubInventoryRepo.Update(ctx, item)
}

func (r *stubInventoryRepo) AdjustQuantity(_ context.Context, id string, delta int) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientItem
	}
	item.Quantity += delta
	clone := *item
	return &clone, nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

type stubNotifier struct {
	queued []domain.Notification
}

func (n *stubNotifier) Enqueue(notification domain.Notification) {
	n.queued = append(n.queued, notification)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func widgetInput() ports.ItemInput {
	return ports.ItemInput{
		Name:         "Clay pot",
		SKU:          " pot-01 ",
		Category:     "ceramics",
		Quantity:     10,
		UnitPrice:    12.5,
		ReorderLevel: 5,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestInventoryService_Create_NormalizesSKU(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), nil, nil, discardLogger)

	item, err := svc.Create(context.Background(), widgetInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.SKU != "POT-01" {
		t.Fatalf("expected normalized sku, got %q", item.SKU)
	}
	if item.ID == "" || item.CreatedAt.IsZero() {
		t.Fatalf("expected persisted item, got %+v", item)
	}
}

func TestInventoryService_Create_Validation(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), nil, nil, discardLogger)

	missing := widgetInput()
	missing.SKU = "  "
	if _, err := svc.Create(context.Background(), missing); !errors.Is(err, domain.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}

	negative := widgetInput()
	negative.Quantity = -1
	if _, err := svc.Create(context.Background(), negative); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestInventoryService_Create_DuplicateSKU(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), nil, nil, discardLogger)

	_, _ = svc.Create(context.Background(), widgetInput())
	if _, err := svc.Create(context.Background(), widgetInput()); !errors.Is(err, domain.ErrDuplicateSKU) {
		t.Fatalf("expected ErrDuplicateSKU, got %v", err)
	}
}

func TestInventoryService_Adjust_LowStockNotifies(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewInventoryService(newStubInventoryRepo(), notifier, []string{"ops@example.com"}, discardLogger)
	item, _ := svc.Create(context.Background(), widgetInput())

	updated, err := svc.Adjust(context.Background(), item.ID, -6)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if updated.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", updated.Quantity)
	}
	if len(notifier.queued) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.queued))
	}
	n := notifier.queued[0]
	if n.Kind != domain.NotifyLowStock || n.ItemID != item.ID {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if !strings.Contains(n.Message.Subject, "POT-01") {
		t.Fatalf("expected sku in subject, got %q", n.Message.Subject)
	}
}

func TestInventoryService_Adjust_NoRecipientsNoNotification(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewInventoryService(newStubInventoryRepo(), notifier, nil, discardLogger)
	item, _ := svc.Create(context.Background(), widgetInput())

	if _, err := svc.Adjust(context.Background(), item.ID, -9); err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if len(notifier.queued) != 0 {
		t.Fatalf("expected no notification without recipients")
	}
}

func TestInventoryService_Adjust_Insufficient(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), nil, nil, discardLogger)
	item, _ := svc.Create(context.Background(), widgetInput())

	if _, err := svc.Adjust(context.Background(), item.ID, -11); !errors.Is(err, domain.ErrInsufficientItem) {
		t.Fatalf("expected ErrInsufficientItem, got %v", err)
	}
}

func TestInventoryService_Update_CrossingReorderLevelNotifiesOnce(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewInventoryService(newStubInventoryRepo(), notifier, []string{"ops@example.com"}, discardLogger)
	item, _ := svc.Create(context.Background(), widgetInput())

	in := widgetInput()
	in.Quantity = 2
	if _, err := svc.Update(context.Background(), item.ID, in); err != nil {
		t.Fatalf("Update: %v", err)
	}
	in.Quantity = 1
	if _, err := svc.Update(context.Background(), item.ID, in); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(notifier.queued) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.queued))
	}
}

func TestInventoryService_Update_ComparesAgainstReplacedDocument(t *testing.T) {
	base := newStubInventoryRepo()
	notifier := &stubNotifier{}
	svc := NewInventoryService(&restockingRepo{stubInventoryRepo: base, delta: 7}, notifier, []string{"ops@example.com"}, discardLogger)

	in := widgetInput()
	in.Quantity = 3
	item, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Stored quantity is 3 (low) when the caller reads it, but 10 by the
	// time the write lands, so setting it to 2 crosses the reorder level.
	in.Quantity = 2
	updated, err := svc.Update(context.Background(), item.ID, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Quantity != 2 || !updated.CreatedAt.Equal(item.CreatedAt) {
		t.Fatalf("unexpected updated item: %+v", updated)
	}
	if len(notifier.queued) != 1 || notifier.queued[0].Kind != domain.NotifyLowStock {
		t.Fatalf("expected one low-stock notification, got %+v", notifier.queued)
	}
}

func TestInventoryService_Update_NotFound(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), nil, nil, discardLogger)

	if _, err := svc.Update(context.Background(), "missing", widgetInput()); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventoryService_ListAndDelete(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), nil, nil, discardLogger)
	item, _ := svc.Create(context.Background(), widgetInput())

	other := widgetInput()
	other.SKU = "rug-1"
	other.Category = "textiles"
	_, _ = svc.Create(context.Background(), other)

	items, err := svc.List(context.Background(), ports.InventoryFilter{Category: "ceramics"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].ID != item.ID {
		t.Fatalf("unexpected list result: %+v", items)
	}

	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), item.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
}
