package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// JWTInspector implements domain.TokenInspector. The core API signs its
// bearer tokens with a key this layer does not hold, so claims are read
// without signature verification. They are used only to cap the session
// lifetime, never to grant access.
type JWTInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector creates a claims inspector for backend-issued tokens.
func NewJWTInspector() *JWTInspector {
	return &JWTInspector{parser: jwt.NewParser(jwt.WithoutClaimsValidation())}
}

var _ domain.TokenInspector = (*JWTInspector)(nil)

// ExpiresAt implements domain.TokenInspector. The second return is false
// when the token is not a JWT or carries no exp claim.
func (i *JWTInspector) ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
