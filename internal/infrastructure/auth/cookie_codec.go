package auth

import (
	"crypto/sha256"

	"github.com/gorilla/securecookie"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// CookieCodecImpl implements domain.CookieCodec. The cookie value is the
// session id, signed and encrypted with keys derived from the configured
// session secret.
type CookieCodecImpl struct {
	name string
	sc   *securecookie.SecureCookie
}

// NewCookieCodec derives signing and encryption keys from secret and returns
// a codec bound to the given cookie name.
func NewCookieCodec(name, secret string) *CookieCodecImpl {
	hashKey := sha256.Sum256([]byte(secret))
	blockKey := sha256.Sum256([]byte(secret + ":block"))
	return &CookieCodecImpl{
		name: name,
		sc:   securecookie.New(hashKey[:], blockKey[:]),
	}
}

var _ domain.CookieCodec = (*CookieCodecImpl)(nil)

// Encode implements domain.CookieCodec.
func (c *CookieCodecImpl) Encode(sessionID string) (string, error) {
	return c.sc.Encode(c.name, sessionID)
}

// Decode implements domain.CookieCodec.
func (c *CookieCodecImpl) Decode(value string) (string, error) {
	var sessionID string
	if err := c.sc.Decode(c.name, value, &sessionID); err != nil {
		return "", err
	}
	return sessionID, nil
}
