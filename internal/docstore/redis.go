package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ryanuber/go-glob"
)

// Redis is a Store backed by a Redis server. Every (user, collection)
// pair maps to one hash, document keys are hash fields.
type Redis struct {
	client *redis.Client
}

var _ Store = &Redis{}

// OpenRedis connects to the Redis server at addr and verifies the
// connection with a ping.
func OpenRedis(addr string) (*Redis, error) {
	opt, err := redis.ParseURL(fmt.Sprintf("redis://%s", addr))
	if err != nil {
		opt = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client}, nil
}

// Close closes the client connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Ping verifies the server connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func hashKey(userID, collection string) string {
	return fmt.Sprintf("docs:%s:%s", userID, collection)
}

func (r *Redis) All(ctx context.Context, userID, collection string) ([]Document, error) {
	values, err := r.client.HGetAll(ctx, hashKey(userID, collection)).Result()
	if err != nil {
		return nil, err
	}

	documents := make([]Document, 0, len(values))
	for key, value := range values {
		documents = append(documents, Document{Key: key, Data: json.RawMessage(value)})
	}
	sort.Slice(documents, func(i, j int) bool { return documents[i].Key < documents[j].Key })

	return documents, nil
}

func (r *Redis) Get(ctx context.Context, userID, collection, key string) (json.RawMessage, error) {
	value, err := r.client.HGet(ctx, hashKey(userID, collection), key).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return json.RawMessage(value), nil
}

func (r *Redis) Set(ctx context.Context, userID, collection, key string, data json.RawMessage) error {
	return r.client.HSet(ctx, hashKey(userID, collection), key, []byte(data)).Err()
}

func (r *Redis) Delete(ctx context.Context, userID, collection, key string) error {
	return r.client.HDel(ctx, hashKey(userID, collection), key).Err()
}

func (r *Redis) Keys(ctx context.Context, userID, collection, pattern string) ([]string, error) {
	keys, err := r.client.HKeys(ctx, hashKey(userID, collection)).Result()
	if err != nil {
		return nil, err
	}

	matched := make([]string, 0, len(keys))
	for _, key := range keys {
		if glob.Glob(pattern, key) {
			matched = append(matched, key)
		}
	}
	sort.Strings(matched)

	return matched, nil
}
