package domain

import (
	"errors"
	"time"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidItem      = errors.New("name and sku are required")
	ErrDuplicateSKU     = errors.New("sku already exists")
	ErrInvalidQuantity  = errors.New("quantity cannot be negative")
	ErrInsufficientItem = errors.New("not enough stock")
)

// InventoryItem is a stocked product line.
type InventoryItem struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	SKU          string    `json:"sku" bson:"sku"`
	Category     string    `json:"category,omitempty" bson:"category,omitempty"`
	Quantity     int       `json:"quantity" bson:"quantity"`
	UnitPrice    float64   `json:"unit_price" bson:"unit_price"`
	ReorderLevel int       `json:"reorder_level" bson:"reorder_level"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// BelowReorderLevel reports whether the item should be restocked.
func (i *InventoryItem) BelowReorderLevel() bool {
	return i.ReorderLevel > 0 && i.Quantity < i.ReorderLevel
}
