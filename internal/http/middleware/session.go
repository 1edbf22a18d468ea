package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ChamithuRuberu/fitpro/domain"
)

const sessionContextKey = "session"

// SessionManager loads the session referenced by the signed cookie into the
// request context and issues/clears cookies. State flows through the gin
// context explicitly; there is no ambient session storage.
type SessionManager struct {
	store      domain.SessionStore
	codec      domain.CookieCodec
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     zerolog.Logger
}

// NewSessionManager creates a session manager.
func NewSessionManager(store domain.SessionStore, codec domain.CookieCodec, cookieName string, ttl time.Duration, secure bool, logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		store:      store,
		codec:      codec,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
		logger:     logger.With().Str("component", "session").Logger(),
	}
}

// Load resolves the cookie to a session and stashes it in the context.
// Requests with no cookie, an unverifiable cookie, or an expired record
// proceed without a session.
func (m *SessionManager) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil {
			c.Next()
			return
		}

		sessionID, err := m.codec.Decode(cookie)
		if err != nil {
			m.logger.Warn().Err(err).Msg("rejecting unverifiable session cookie")
			m.clearCookie(c)
			c.Next()
			return
		}

		sess, err := m.store.Find(c.Request.Context(), sessionID)
		if err != nil {
			if err != domain.ErrSessionNotFound && err != domain.ErrSessionExpired {
				m.logger.Error().Err(err).Msg("session lookup failed")
			}
			m.clearCookie(c)
			c.Next()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// Current returns the request's session, or nil when none was loaded.
func (m *SessionManager) Current(c *gin.Context) *domain.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*domain.Session)
	if !ok {
		return nil
	}
	return sess
}

// Begin returns the current session or starts a fresh one, issuing its
// cookie. The fresh session is not persisted until a service saves it.
func (m *SessionManager) Begin(c *gin.Context) (*domain.Session, error) {
	if sess := m.Current(c); sess != nil {
		return sess, nil
	}

	now := time.Now()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	encoded, err := m.codec.Encode(sess.ID)
	if err != nil {
		return nil, err
	}
	m.setCookie(c, encoded, int(m.ttl.Seconds()))
	c.Set(sessionContextKey, sess)
	return sess, nil
}

// Clear destroys the session record and expires the cookie.
func (m *SessionManager) Clear(c *gin.Context, sess *domain.Session) {
	if sess != nil {
		if err := m.store.Delete(c.Request.Context(), sess.ID); err != nil {
			m.logger.Warn().Err(err).Msg("failed to delete session record")
		}
	}
	m.clearCookie(c)
	c.Set(sessionContextKey, nil)
}

func (m *SessionManager) setCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (m *SessionManager) clearCookie(c *gin.Context) {
	m.setCookie(c, "", -1)
}
