package contract

import (
	"context"
	"time"
)

// IKeyValueStore is the minimal key-value collaborator the vote tally is kept in.
// Implementations must make Increment and AddToSet atomic: AddToSet reports true only
// for the single caller that inserted the member.
type IKeyValueStore interface {
	// Get returns the counter stored at key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value int64, ok bool, err error)
	// Increment creates the counter at 0 when absent, adds one and returns the result.
	Increment(ctx context.Context, key string) (int64, error)
	// AddToSet adds member to the set at key and reports whether it was newly added.
	AddToSet(ctx context.Context, key, member string) (bool, error)
	IsMember(ctx context.Context, key, member string) (bool, error)
	// Expire sets a time to live on key. Missing keys are ignored.
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Close() error
}
