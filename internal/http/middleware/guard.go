package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// Guard protects dashboard routes: a request must carry a logged-in session
// with a resolved role, and the role must be allowed onto the route.
type Guard struct {
	sessions *SessionManager
	enforcer domain.RoleEnforcer
}

// NewGuard creates a route guard.
func NewGuard(sessions *SessionManager, enforcer domain.RoleEnforcer) *Guard {
	return &Guard{sessions: sessions, enforcer: enforcer}
}

// RequireLogin aborts with 401 and a login redirect hint when the session is
// absent, not logged in, or missing its role. No data fetch happens past
// this point for unauthenticated requests.
func (g *Guard) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := g.sessions.Current(c)
		if sess == nil || !sess.IsLoggedIn || sess.Token == "" || sess.Role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "redirect": "/login"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// EnforceRole checks the session role against the route via Casbin.
func (g *Guard) EnforceRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := g.sessions.Current(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "redirect": "/login"})
			c.Abort()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed, err := g.enforcer.Allowed(sess.Role, path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}
