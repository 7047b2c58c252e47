package ports

import (
	"context"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

// InventoryFilter narrows a listing. Empty fields match everything.
type InventoryFilter struct {
	Category string
	LowStock bool
}

// InventoryRepository defines persistence operations for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	FindByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context, filter InventoryFilter) ([]*domain.InventoryItem, error)
	// Update overwrites the writable fields of item.ID and returns the item as
	// it was immediately before the write.
	Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	// AdjustQuantity atomically adds delta to the stored quantity and returns
	// the updated item. It fails with ErrInsufficientItem when the result
	// would be negative.
	AdjustQuantity(ctx context.Context, id string, delta int) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

// ItemInput carries the writable fields of an inventory item.
type ItemInput struct {
	Name         string
	SKU          string
	Category     string
	Quantity     int
	UnitPrice    float64
	ReorderLevel int
}

// InventoryService defines use-case operations for inventory.
type InventoryService interface {
	Create(ctx context.Context, in ItemInput) (*domain.InventoryItem, error)
	Get(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context, filter InventoryFilter) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, id string, in ItemInput) (*domain.InventoryItem, error)
	Adjust(ctx context.Context, id string, delta int) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}
