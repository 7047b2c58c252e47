package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

const collectionRestocks = "restocks"

type RestockRepository struct {
	col *mongo.Collection
}

func NewRestockRepository(db *mongo.Database) *RestockRepository {
	return &RestockRepository{col: db.Collection(collectionRestocks)}
}

func (r *RestockRepository) Create(ctx context.Context, rs *domain.Restock) (*domain.Restock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *rs
	doc.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert restock: %w", err)
	}
	return &doc, nil
}

func (r *RestockRepository) FindByID(ctx context.Context, id string) (*domain.Restock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rs domain.Restock
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRestockNotFound
		}
		return nil, fmt.Errorf("find restock: %w", err)
	}
	return &rs, nil
}

// List returns restocks newest first, optionally filtered by status.
func (r *RestockRepository) List(ctx context.Context, status domain.RestockStatus) ([]*domain.Restock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list restocks: %w", err)
	}

	restocks := make([]*domain.Restock, 0)
	if err := cur.All(ctx, &restocks); err != nil {
		return nil, fmt.Errorf("decode restocks: %w", err)
	}
	return restocks, nil
}

// MarkReceived transitions pending → received atomically; the status filter
// makes a second receive a no-op that reports ErrRestockAlreadyReceived.
func (r *RestockRepository) MarkReceived(ctx context.Context, id string, at time.Time) (*domain.Restock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "status": domain.RestockPending}
	update := bson.M{"$set": bson.M{"status": domain.RestockReceived, "received_at": at}}

	var rs domain.Restock
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rs)
	if err == nil {
		return &rs, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("mark restock received: %w", err)
	}

	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrRestockAlreadyReceived
}

// Reopen reverts a received restock to pending. Only received restocks match,
// so a restock that is already pending is left as is.
func (r *RestockRepository) Reopen(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "status": domain.RestockReceived}
	update := bson.M{
		"$set":   bson.M{"status": domain.RestockPending},
		"$unset": bson.M{"received_at": ""},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("reopen restock: %w", err)
	}
	if res.MatchedCount == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the restocks collection.
func (r *RestockRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "item_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
