package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRoleTTL = 30 * time.Second

// RoleCache caches the stored role of each user, keyed by email.
// Key format: role:<email>. An empty role is a valid cached value.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache creates a RoleCache wrapping the given Redis client. Entries
// expire after ttl (30s when ttl <= 0).
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = defaultRoleTTL
	}
	return &RoleCache{client: client, ttl: ttl}
}

// Get returns the cached role and whether an entry exists.
func (r *RoleCache) Get(ctx context.Context, email string) (string, bool, error) {
	role, err := r.client.Get(ctx, r.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("role cache get: %w", err)
	}
	return role, true, nil
}

// Set records role for email until the TTL expires.
func (r *RoleCache) Set(ctx context.Context, email, role string) error {
	if err := r.client.Set(ctx, r.key(email), role, r.ttl).Err(); err != nil {
		return fmt.Errorf("role cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached role for email.
func (r *RoleCache) Invalidate(ctx context.Context, email string) error {
	if err := r.client.Del(ctx, r.key(email)).Err(); err != nil {
		return fmt.Errorf("role cache invalidate: %w", err)
	}
	return nil
}

func (r *RoleCache) key(email string) string {
	return "role:" + email
}
