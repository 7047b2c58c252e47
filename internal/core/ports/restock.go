package ports

import (
	"context"
	"time"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

// RestockRepository defines persistence operations for restock requests.
type RestockRepository interface {
	Create(ctx context.Context, r *domain.Restock) (*domain.Restock, error)
	FindByID(ctx context.Context, id string) (*domain.Restock, error)
	List(ctx context.Context, status domain.RestockStatus) ([]*domain.Restock, error)
	// MarkReceived flips a pending restock to received. It returns
	// ErrRestockAlreadyReceived when the restock is not pending anymore.
	MarkReceived(ctx context.Context, id string, at time.Time) (*domain.Restock, error)
	// Reopen flips a received restock back to pending and clears received_at.
	Reopen(ctx context.Context, id string) error
}

// RestockInput carries the fields of a new restock request.
type RestockInput struct {
	ItemID      string
	Quantity    int
	Supplier    string
	RequestedBy string
}

// RestockService defines use-case operations for restocking.
type RestockService interface {
	Request(ctx context.Context, in RestockInput) (*domain.Restock, error)
	List(ctx context.Context, status domain.RestockStatus) ([]*domain.Restock, error)
	Receive(ctx context.Context, id string) (*domain.Restock, error)
}
