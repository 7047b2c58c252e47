package domain

import (
	"errors"
	"time"
)

// RestockStatus is the lifecycle state of a restock request.
type RestockStatus string

const (
	RestockPending  RestockStatus = "pending"
	RestockReceived RestockStatus = "received"
)

var (
	ErrRestockNotFound        = errors.New("restock not found")
	ErrRestockAlreadyReceived = errors.New("restock already received")
)

// Restock is a request to replenish an inventory item.
type Restock struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	ItemID      string        `json:"item_id" bson:"item_id"`
	Quantity    int           `json:"quantity" bson:"quantity"`
	Supplier    string        `json:"supplier,omitempty" bson:"supplier,omitempty"`
	RequestedBy string        `json:"requested_by" bson:"requested_by"`
	Status      RestockStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	ReceivedAt  *time.Time    `json:"received_at,omitempty" bson:"received_at,omitempty"`
}
