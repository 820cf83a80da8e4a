package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConversationGuard enforces the one-active-conversation-per-user rule
// across bot instances with a SETNX key per user. The TTL covers crashed
// processes: a lock that is never released disappears on its own and the
// database sweep reconciles the rest.
type RedisConversationGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisConversationGuard(client *redis.Client, ttl time.Duration) *RedisConversationGuard {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisConversationGuard{
		client: client,
		prefix: "support:conversation:",
		ttl:    ttl,
	}
}

// Acquire takes the per-user lock. It returns false without error when
// another start already holds it.
func (g *RedisConversationGuard) Acquire(ctx context.Context, telegramUserID int64) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.buildKey(telegramUserID), 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire conversation lock: %w", err)
	}
	return ok, nil
}

// Release drops the per-user lock. Releasing a lock that is not held is not
// an error.
func (g *RedisConversationGuard) Release(ctx context.Context, telegramUserID int64) error {
	if err := g.client.Del(ctx, g.buildKey(telegramUserID)).Err(); err != nil {
		return fmt.Errorf("failed to release conversation lock: %w", err)
	}
	return nil
}

// Refresh extends the lock TTL so an active conversation does not lose its
// lock mid-flow.
func (g *RedisConversationGuard) Refresh(ctx context.Context, telegramUserID int64) error {
	if err := g.client.Expire(ctx, g.buildKey(telegramUserID), g.ttl).Err(); err != nil {
		return fmt.Errorf("failed to refresh conversation lock: %w", err)
	}
	return nil
}

func (g *RedisConversationGuard) buildKey(telegramUserID int64) string {
	return fmt.Sprintf("%s%d", g.prefix, telegramUserID)
}
