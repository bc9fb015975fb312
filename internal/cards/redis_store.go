package cards

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"hackboard-backend/pkg/models"
)

const (
	redisHiddenKey = "hidden-ids"
	redisCustomKey = "custom-cards"
)

// RedisStore keeps the two records as opaque JSON values in a remote
// key-value service. A missing key reads as the empty value, matching the
// FileStore behavior.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance described by the URL
// (redis://... or rediss://...).
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (s *RedisStore) HiddenIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := s.get(ctx, redisHiddenKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *RedisStore) SaveHiddenIDs(ctx context.Context, ids []string) error {
	return s.set(ctx, redisHiddenKey, ids)
}

func (s *RedisStore) CustomCards(ctx context.Context) ([]models.CustomCard, error) {
	cards := []models.CustomCard{}
	if err := s.get(ctx, redisCustomKey, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *RedisStore) SaveCustomCards(ctx context.Context, cards []models.CustomCard) error {
	return s.set(ctx, redisCustomKey, cards)
}

func (s *RedisStore) get(ctx context.Context, key string, out any) error {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
