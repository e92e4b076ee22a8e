// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"cleanmaster/config"

	"github.com/go-redis/redis/v8"
)

var (
	// ChatCacheClient backs the chat assistant's session context store.
	ChatCacheClient *redis.Client
	// StateCacheClient backs small per-device state (remembered customer phone).
	StateCacheClient *redis.Client
)

// InitChatCache initializes the Redis client for chat context storage.
func InitChatCache() {
	ChatCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ChatCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Cache): %v", err)
	}
}

// GetChatCacheClient returns the chat context cache client.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		InitChatCache()
	}
	return ChatCacheClient
}

// InitStateCache initializes the Redis client for per-device state.
func InitStateCache() {
	StateCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StateCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (State Cache): %v", err)
	}
}

// GetStateCacheClient returns the per-device state cache client.
func GetStateCacheClient() *redis.Client {
	if StateCacheClient == nil {
		InitStateCache()
	}
	return StateCacheClient
}
