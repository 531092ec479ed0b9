package utils

import (
	"context"
	"fmt"
	"time"
)

const sessionKeyPrefix = "staff_session:"

// CacheSession stores a hashed staff token so it can be revoked later.
func CacheSession(ctx context.Context, staffID, token string, ttl time.Duration) error {
	client := GetAuthCacheClient()
	key := sessionKeyPrefix + staffID
	if err := client.Set(ctx, key, HashToken(token), ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session for staff %s: %w", staffID, err)
	}
	return nil
}

// SessionValid reports whether the presented token matches the cached
// session for the staff member. A missing key means the session was
// revoked or expired.
func SessionValid(ctx context.Context, staffID, token string) bool {
	client := GetAuthCacheClient()
	cached, err := client.Get(ctx, sessionKeyPrefix+staffID).Result()
	if err != nil {
		return false
	}
	return cached == HashToken(token)
}

// RevokeSession drops the cached session, invalidating the token.
func RevokeSession(ctx context.Context, staffID string) error {
	client := GetAuthCacheClient()
	if err := client.Del(ctx, sessionKeyPrefix+staffID).Err(); err != nil {
		return fmt.Errorf("failed to revoke session for staff %s: %w", staffID, err)
	}
	return nil
}
