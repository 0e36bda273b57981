package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"spendview/internal/session"
)

const sessionKey = "session"

// WithSession resolves the request's session from its cookie and stores it
// on the Gin context for downstream handlers.
func WithSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, sessions.Resolve(c))
		c.Next()
	}
}

// CurrentSession returns the session placed by WithSession. When the
// middleware has not run the state is Unknown, which no guard treats as
// ready to render.
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Session{State: session.StateUnknown}
}

// RequireAuth guards a route group: anonymous visitors are redirected to
// the login page carrying the originally requested URL for the post-login
// return. An Unknown state means the session middleware is missing, which
// is a wiring fault, not a user error.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s.State == session.StateUnknown {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if !s.IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, "/login?from="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole gates a route group on an exact, case-sensitive role match.
// Authenticated visitors without the role land on the unauthorized page.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).HasRole(role) {
			c.Redirect(http.StatusSeeOther, "/unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
