package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the connectivity snapshot served on /health: the
// order store and the staff session cache.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	AuthCache bool      `json:"authCache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func recordHealth(mongoOK, cacheOK bool) {
	healthMu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoOK,
		AuthCache: cacheOK,
		CheckedAt: time.Now(),
	}
	healthMu.Unlock()
}

// StartHealthMonitor probes MongoDB and the auth cache once immediately
// and then on an interval, so /health never serves a zero-value
// snapshot after startup.
func StartHealthMonitor(authCache *redis.Client, mongoClient *mongo.Client) {
	check := func(ctx context.Context) {
		recordHealth(
			mongoClient.Ping(ctx, nil) == nil,
			authCache.Ping(ctx).Err() == nil,
		)
	}

	go func() {
		ctx := context.Background()
		check(ctx)

		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			check(ctx)
		}
	}()
}
