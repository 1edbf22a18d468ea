package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChamithuRuberu/fitpro/domain"
	"github.com/ChamithuRuberu/fitpro/internal/infrastructure/database"
)

// InflightGuard serializes state-changing operations per session. A second
// submission while the first is still settling gets ErrOperationInFlight
// instead of a duplicate backend call.
type InflightGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInflightGuard creates a guard. ttl bounds how long a slot stays claimed
// if a release is lost (process crash mid-call).
func NewInflightGuard(client *redis.Client, ttl time.Duration) *InflightGuard {
	return &InflightGuard{client: client, ttl: ttl}
}

// Acquire claims the slot for op on behalf of sessionID. The returned release
// must be called once the operation settles.
func (g *InflightGuard) Acquire(ctx context.Context, sessionID, op string) (func(), error) {
	key := fmt.Sprintf("inflight:%s:%s", sessionID, op)
	ok, err := database.SetNX(ctx, g.client, key, 1, g.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to claim inflight slot: %w", err)
	}
	if !ok {
		return nil, domain.ErrOperationInFlight
	}
	return func() { g.client.Del(context.Background(), key) }, nil
}
