package redis

import (
	"context"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// KeyPrefix namespaces every slot written by the store.
const KeyPrefix = "snake:highscore:"

// Store keeps each slot in its own redis string key.
type Store struct {
	client *redis.Client
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client}, nil
}

// Load reads the score stored in slot.
func (rs *Store) Load(ctx context.Context, slot string) (int, error) {
	score, err := rs.client.WithContext(ctx).Get(slotKey(slot)).Int64()
	if err == redis.Nil {
		return 0, highscore.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrapf(err, "unable to load %s", slot)
	}
	return int(score), nil
}

// Save writes score to slot, replacing any previous value.
func (rs *Store) Save(ctx context.Context, slot string, score int) error {
	if score < 0 {
		return highscore.ErrInvalidScore
	}
	err := rs.client.WithContext(ctx).Set(slotKey(slot), score, 0).Err()
	return errors.Wrapf(err, "unable to save %s", slot)
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}

func slotKey(slot string) string {
	return KeyPrefix + slot
}
