// Package session owns the client side of the authentication lifecycle:
// the bearer token cookie, the claims decoded from it, and the derived
// authentication state.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spendview/internal/api"
	"spendview/internal/config"
	apperrors "spendview/internal/errors"
	"spendview/internal/logger"
	"spendview/internal/models"
)

// State is the authentication state derived from the stored token.
type State int

const (
	// StateUnknown means the cookie has not been consulted yet. Callers
	// must not render protected content in this state.
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

// Session is the per-request view of the authenticated user. The zero
// value is StateUnknown.
type Session struct {
	Token  string
	Claims Claims
	State  State
}

// IsAuthenticated reports whether the session carries a live token.
func (s Session) IsAuthenticated() bool {
	return s.State == StateAuthenticated
}

// HasRole reports whether the session is authenticated with exactly the
// given role. Always false for anonymous sessions.
func (s Session) HasRole(role string) bool {
	return s.IsAuthenticated() && s.Claims.Role == role
}

// Manager is the single injected owner of the session cookie. Only Login
// and Logout mutate the stored token; everything else reads.
type Manager struct {
	client *api.Client
	cfg    *config.Config
	now    func() time.Time
}

// NewManager creates a Manager backed by the given API client.
func NewManager(client *api.Client, cfg *config.Config) *Manager {
	return &Manager{client: client, cfg: cfg, now: time.Now}
}

// Resolve derives the session from the request's cookie: no cookie,
// an undecodable token, or a past expiry all resolve to Anonymous. Stale
// cookies are cleared on the way out.
func (m *Manager) Resolve(c *gin.Context) Session {
	token, err := c.Cookie(m.cfg.CookieName)
	if err != nil || token == "" {
		return Session{State: StateAnonymous}
	}

	claims, ok := Decode(token)
	if !ok {
		logger.Get().Warnw("discarding undecodable session token", "path", c.Request.URL.Path)
		m.clearCookie(c)
		return Session{State: StateAnonymous}
	}
	if claims.Expired(m.now()) {
		m.clearCookie(c)
		return Session{State: StateAnonymous}
	}

	return Session{Token: token, Claims: claims, State: StateAuthenticated}
}

// Login exchanges credentials with the backend and persists the returned
// token. The cookie's retention window depends on the keep-logged-in flag.
// The backend's rejection message is propagated untouched.
func (m *Manager) Login(c *gin.Context, creds models.Credentials) (Session, error) {
	res, err := m.client.Login(c.Request.Context(), creds)
	if err != nil {
		return Session{State: StateAnonymous}, err
	}

	claims, ok := Decode(res.Token)
	if !ok {
		return Session{State: StateAnonymous}, apperrors.WithMessage(apperrors.ErrServer, "Login returned an unusable token")
	}

	days := m.cfg.SessionDays
	if creds.KeepLoggedIn {
		days = m.cfg.RememberDays
	}
	m.setCookie(c, res.Token, days)

	logger.Get().Infow("user logged in",
		"username", claims.Username,
		"role", claims.Role,
		"remember", creds.KeepLoggedIn,
	)
	return Session{Token: res.Token, Claims: claims, State: StateAuthenticated}, nil
}

// Logout clears the session cookie unconditionally. It cannot fail.
func (m *Manager) Logout(c *gin.Context) {
	m.clearCookie(c)
}

func (m *Manager) setCookie(c *gin.Context, token string, days int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, token, days*24*60*60, "/", "", m.cfg.CookieSecure, true)
}

func (m *Manager) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, "", -1, "/", "", m.cfg.CookieSecure, true)
}
