package ledger

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the serialized sequence as a single Redis string
// key.  SET replaces the value atomically, which gives readers the
// all-or-nothing view the ledger requires.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore returns a store writing under the given key.  An empty
// key falls back to the ledger Namespace.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = Namespace
	}
	return &RedisStore{client: client, key: key}
}

// Load fetches the stored payload.  A missing key means an empty
// ledger, not an error.
func (r *RedisStore) Load(ctx context.Context) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Save replaces the stored payload.  No TTL: receipts are kept until
// the user deletes them.
func (r *RedisStore) Save(ctx context.Context, payload []byte) error {
	return r.client.Set(ctx, r.key, payload, 0).Err()
}
