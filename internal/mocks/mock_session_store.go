package mocks

import (
	"context"
	"sync"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// MockSessionStore implements domain.SessionStore for testing. By default it
// behaves as an in-memory store; individual methods can be overridden.
type MockSessionStore struct {
	CreateFunc func(ctx context.Context, session *domain.Session) error
	FindFunc   func(ctx context.Context, sessionID string) (*domain.Session, error)
	SaveFunc   func(ctx context.Context, session *domain.Session) error
	DeleteFunc func(ctx context.Context, sessionID string) error

	mu       sync.Mutex
	sessions map[string]domain.Session
}

// NewMockSessionStore creates a new MockSessionStore with default behaviors.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string]domain.Session)}
}

func (m *MockSessionStore) put(session *domain.Session) error {
	if session.IsLoggedIn && session.Token == "" {
		return domain.ErrTokenMissing
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = *session
	return nil
}

// Create stores a session.
func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return m.put(session)
}

// Find returns a stored session.
func (m *MockSessionStore) Find(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := sess
	return &copied, nil
}

// Save stores a session.
func (m *MockSessionStore) Save(ctx context.Context, session *domain.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	return m.put(session)
}

// Delete removes a session.
func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// Stored returns the persisted copy of a session, for assertions.
func (m *MockSessionStore) Stored(sessionID string) (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	return sess, ok
}

// Compile-time interface compliance verification
var _ domain.SessionStore = (*MockSessionStore)(nil)
