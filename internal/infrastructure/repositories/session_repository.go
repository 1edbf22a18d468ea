package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// SessionRepositoryImpl implements domain.SessionStore using Redis.
type SessionRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionRepository creates a new session repository. ttl caps how long a
// session record may live when its ExpiresAt is unset.
func NewSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionStore {
	return &SessionRepositoryImpl{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

// validate rejects session states that must never be persisted.
func validate(session *domain.Session) error {
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.IsLoggedIn && session.Token == "" {
		return domain.ErrTokenMissing
	}
	return nil
}

func (r *SessionRepositoryImpl) write(ctx context.Context, session *domain.Session) error {
	if err := validate(session); err != nil {
		return err
	}

	ttl := r.ttl
	if !session.ExpiresAt.IsZero() {
		ttl = time.Until(session.ExpiresAt)
		if ttl <= 0 {
			return domain.ErrSessionExpired
		}
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, r.prefix+session.ID, data, ttl).Err()
}

// Create implements domain.SessionStore.
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	return r.write(ctx, session)
}

// Save implements domain.SessionStore.
func (r *SessionRepositoryImpl) Save(ctx context.Context, session *domain.Session) error {
	return r.write(ctx, session)
}

// Find implements domain.SessionStore.
func (r *SessionRepositoryImpl) Find(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.prefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
		r.client.Del(ctx, r.prefix+sessionID)
		return nil, domain.ErrSessionExpired
	}

	return &session, nil
}

// Delete implements domain.SessionStore.
func (r *SessionRepositoryImpl) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.prefix+sessionID).Err()
}
