package chat

import (
	"context"
	"encoding/json"
	"time"

	"cleanmaster/models"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// RedisContextStore keeps session state in Redis with a rolling TTL, so an
// abandoned conversation expires on its own.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.ChatContext, error) {
	data, err := s.client.Get(ctx, chatContextPrefix+sessionID).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, chatCtx *models.ChatContext) error {
	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatContextPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, chatContextPrefix+sessionID).Err()
}
