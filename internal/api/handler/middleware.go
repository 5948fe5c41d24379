package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"empathos/backend/internal/auth"
	"empathos/backend/internal/models"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "empathos_session"

// loginPath is where page-shaped routes send unauthenticated callers.
const loginPath = "/login"

const ctxSessionKey = "session"

// RequireSession resolves the session cookie and stores the live session in
// the request context. Rejected requests are aborted before any handler
// runs, so they can never have side effects. Page-shaped routes redirect to
// the login page on failure; API-shaped ones answer 401 JSON.
func RequireSession(sessions *auth.SessionManager, redirectOnFail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			rejectUnauthenticated(c, redirectOnFail)
			return
		}
		sess, err := sessions.Resolve(token)
		if err != nil {
			rejectUnauthenticated(c, redirectOnFail)
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Set("user_id", sess.UserID)
		c.Set("username", sess.Username)
		c.Set("user_role", sess.Role.String())
		c.Next()
	}
}

// RequireRole gates a route to one role. Must run after RequireSession.
func RequireRole(role models.Role, redirectOnFail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok || sess.Role != role {
			if redirectOnFail {
				c.Redirect(http.StatusFound, loginPath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session placed in the context by RequireSession.
func SessionFrom(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok
}

func rejectUnauthenticated(c *gin.Context, redirectOnFail bool) {
	if redirectOnFail {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
}
