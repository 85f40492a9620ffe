package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store using Redis as the backing store.
// Documents are stored as JSON under "<prefix><collection>:<id>"; each
// collection keeps a sorted-set index "<prefix><collection>" scored by first
// write time, which gives All a stable insertion order.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store. Prefix may be empty.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "qa:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) indexKey(collection string) string {
	return r.prefix + collection
}

func (r *RedisStore) docKey(collection, id string) string {
	return r.prefix + collection + ":" + id
}

func (r *RedisStore) NewID(collection string) string {
	return uuid.NewString()
}

// Set writes the document and its index entry in one MULTI/EXEC so a failed
// write never leaves an indexed id without a body.
func (r *RedisStore) Set(ctx context.Context, collection, id string, doc Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.docKey(collection, id), b, 0)
		pipe.ZAddNX(ctx, r.indexKey(collection), redis.Z{Score: float64(time.Now().UnixNano()), Member: id})
		return nil
	})
	return err
}

func (r *RedisStore) Get(ctx context.Context, collection, id string) (Document, error) {
	b, err := r.client.Get(ctx, r.docKey(collection, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *RedisStore) All(ctx context.Context, collection string) ([]Document, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(collection), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := []Document{}
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(collection, id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// indexed but body missing (expired or deleted out of band)
			continue
		}
		var d Document
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *RedisStore) Where(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	all, err := r.All(ctx, collection)
	if err != nil {
		return nil, err
	}
	return filter(all, field, value), nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
