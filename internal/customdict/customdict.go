package customdict

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// CustomDict wraps a Redis hash that pins latin words to fixed Cyrillic
// restorations, shadowing model predictions.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New creates a new CustomDict with the provided Redis client.
func New(client *redis.Client) *CustomDict {
	return &CustomDict{client: client, key: "backtranslit_dict"}
}

// Add pins a restoration for a latin word.
func (cd *CustomDict) Add(ctx context.Context, latin, cyrillic string) error {
	return cd.client.HSet(ctx, cd.key, latin, cyrillic).Err()
}

// Remove deletes the pinned restoration for a latin word.
func (cd *CustomDict) Remove(ctx context.Context, latin string) error {
	return cd.client.HDel(ctx, cd.key, latin).Err()
}

// Get returns the pinned restoration for a latin word, if any.
func (cd *CustomDict) Get(ctx context.Context, latin string) (string, bool, error) {
	v, err := cd.client.HGet(ctx, cd.key, latin).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// All returns every pinned pair stored in the dictionary.
func (cd *CustomDict) All(ctx context.Context) (map[string]string, error) {
	return cd.client.HGetAll(ctx, cd.key).Result()
}
