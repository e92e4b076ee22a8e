package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const devicePhonePrefix = "device:phone:"

// devicePhoneTTL keeps the remembered phone for half a year of inactivity.
const devicePhoneTTL = 180 * 24 * time.Hour

// PhoneMemory remembers the phone used in a device's most recent successful
// submission. It is the lookup key for the orders endpoint and for the
// customer-facing leg of the notification watcher.
type PhoneMemory interface {
	Remember(ctx context.Context, deviceID, phone string) error
	Lookup(ctx context.Context, deviceID string) (string, error)
}

// RedisPhoneMemory implements PhoneMemory on Redis.
type RedisPhoneMemory struct {
	client *redis.Client
}

func NewRedisPhoneMemory(client *redis.Client) *RedisPhoneMemory {
	return &RedisPhoneMemory{client: client}
}

func (m *RedisPhoneMemory) Remember(ctx context.Context, deviceID, phone string) error {
	if deviceID == "" || phone == "" {
		return nil
	}
	return m.client.Set(ctx, devicePhonePrefix+deviceID, phone, devicePhoneTTL).Err()
}

func (m *RedisPhoneMemory) Lookup(ctx context.Context, deviceID string) (string, error) {
	phone, err := m.client.Get(ctx, devicePhonePrefix+deviceID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return phone, nil
}
