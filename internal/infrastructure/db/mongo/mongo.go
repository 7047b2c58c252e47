package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// Repositories bundles every collection adapter backed by one database.
type Repositories struct {
	Users     *AuthRepository
	Inventory *InventoryRepository
	Restocks  *RestockRepository
	Messages  *MessageRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:     NewAuthRepository(db),
		Inventory: NewInventoryRepository(db),
		Restocks:  NewRestockRepository(db),
		Messages:  NewMessageRepository(db),
	}
}

// EnsureIndexes creates the indexes of every collection, stopping at the
// first failure.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	for name, ix := range map[string]indexer{
		collectionUsers:     r.Users,
		collectionInventory: r.Inventory,
		collectionRestocks:  r.Restocks,
		collectionMessages:  r.Messages,
	} {
		if err := ix.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}
