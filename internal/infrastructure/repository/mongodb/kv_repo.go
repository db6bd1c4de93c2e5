package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/DailyWish/internal/domain/contract"
)

// KeyValueRepository stores every key as one document: counters in "value", sets in
// "members". Single-document updates are atomic, which gives INCR and add-if-new.
type KeyValueRepository struct {
	collection *mongo.Collection
}

var _ contract.IKeyValueStore = (*KeyValueRepository)(nil)

type kvDocument struct {
	ID        string    `bson:"_id"`
	Value     int64     `bson:"value,omitempty"`
	Members   []string  `bson:"members,omitempty"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
}

// NewKeyValueRepository creates the repository over db.kv_store.
func NewKeyValueRepository(db *mongo.Database) *KeyValueRepository {
	return &KeyValueRepository{
		collection: db.Collection("kv_store"),
	}
}

// EnsureIndexes creates the TTL index that lets MongoDB drop expired keys.
func (r *KeyValueRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("failed to create ttl index: %w", err)
	}
	return nil
}

func (r *KeyValueRepository) Get(ctx context.Context, key string) (int64, bool, error) {
	var doc kvDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (r *KeyValueRepository) Increment(ctx context.Context, key string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc kvDocument
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": key}, bson.M{"$inc": bson.M{"value": int64(1)}}, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		// two upserts raced on a new key; the document exists now
		err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": key}, bson.M{"$inc": bson.M{"value": int64(1)}}, opts).Decode(&doc)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}
	return doc.Value, nil
}

func (r *KeyValueRepository) AddToSet(ctx context.Context, key, member string) (bool, error) {
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$addToSet": bson.M{"members": member}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": key}, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		res, err = r.collection.UpdateOne(ctx, bson.M{"_id": key}, update, opts)
	}
	if err != nil {
		return false, fmt.Errorf("failed to add member to %s: %w", key, err)
	}
	return res.UpsertedCount == 1 || res.ModifiedCount == 1, nil
}

func (r *KeyValueRepository) IsMember(ctx context.Context, key, member string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": key, "members": member}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check member of %s: %w", key, err)
	}
	return n > 0, nil
}

func (r *KeyValueRepository) Expire(ctx context.Context, key string, ttl time.Duration) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": bson.M{"expires_at": time.Now().Add(ttl)}})
	if err != nil {
		return fmt.Errorf("failed to expire %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; the client is owned by the database package.
func (r *KeyValueRepository) Close() error {
	return nil
}
