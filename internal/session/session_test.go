package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"spendview/internal/api"
	"spendview/internal/config"
	"spendview/internal/models"
	"spendview/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		CookieName:   "access_token",
		SessionDays:  1,
		RememberDays: 7,
	}
}

func testContext(t *testing.T, cookie string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: cookie})
	}
	c.Request = req
	return c, w
}

func TestResolve(t *testing.T) {
	t.Run("no_cookie_is_anonymous", func(t *testing.T) {
		mgr := NewManager(nil, testConfig())
		c, _ := testContext(t, "")

		s := mgr.Resolve(c)
		if s.State != StateAnonymous {
			t.Errorf("expected anonymous, got %v", s.State)
		}
		if s.IsAuthenticated() {
			t.Error("anonymous session must not be authenticated")
		}
	})

	t.Run("live_token_is_authenticated", func(t *testing.T) {
		mgr := NewManager(nil, testConfig())
		token := testutil.SignedToken(t, "7", "nils", "User", time.Now().Add(time.Hour))
		c, _ := testContext(t, token)

		s := mgr.Resolve(c)
		if !s.IsAuthenticated() {
			t.Fatal("expected authenticated session")
		}
		if s.Claims.Username != "nils" {
			t.Errorf("expected username nils, got %q", s.Claims.Username)
		}
		if s.Token != token {
			t.Error("expected session to carry the raw token")
		}
	})

	t.Run("expired_token_is_anonymous_and_cleared", func(t *testing.T) {
		mgr := NewManager(nil, testConfig())
		token := testutil.SignedToken(t, "7", "nils", "Admin", time.Now().Add(-time.Minute))
		c, w := testContext(t, token)

		s := mgr.Resolve(c)
		if s.State != StateAnonymous {
			t.Errorf("expected expired token to resolve anonymous, got %v", s.State)
		}
		if !cookieCleared(w) {
			t.Error("expected stale cookie to be cleared")
		}
	})

	t.Run("malformed_token_is_anonymous_and_cleared", func(t *testing.T) {
		mgr := NewManager(nil, testConfig())
		c, w := testContext(t, "garbage")

		if s := mgr.Resolve(c); s.State != StateAnonymous {
			t.Errorf("expected anonymous, got %v", s.State)
		}
		if !cookieCleared(w) {
			t.Error("expected undecodable cookie to be cleared")
		}
	})
}

func cookieCleared(w *httptest.ResponseRecorder) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" && c.Value != "" {
			return c
		}
	}
	return nil
}

func TestHasRole(t *testing.T) {
	t.Run("anonymous_has_no_roles", func(t *testing.T) {
		s := Session{State: StateAnonymous, Claims: Claims{Role: "Admin"}}
		for _, role := range []string{"Admin", "User", ""} {
			if s.HasRole(role) {
				t.Errorf("anonymous session must not have role %q", role)
			}
		}
	})

	t.Run("match_is_exact_and_case_sensitive", func(t *testing.T) {
		s := Session{State: StateAuthenticated, Claims: Claims{Role: "Admin"}}
		if !s.HasRole("Admin") {
			t.Error("expected exact role to match")
		}
		if s.HasRole("admin") || s.HasRole("User") {
			t.Error("expected non-matching roles to fail")
		}
	})
}

func loginBackend(t *testing.T, token string) *testutil.Backend {
	backend := testutil.NewBackend(t)
	backend.Handle("POST /auth/login/access-token", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("bad login payload: %v", err)
		}
		if creds.Password != "Str0ng!pass" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid username or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": token, "username": creds.Username, "role": "User"})
	})
	return backend
}

func TestLogin(t *testing.T) {
	t.Run("short_retention_by_default", func(t *testing.T) {
		token := testutil.SignedToken(t, "7", "nils", "User", time.Now().Add(time.Hour))
		backend := loginBackend(t, token)
		mgr := NewManager(api.NewClient(backend.URL), testConfig())
		c, w := testContext(t, "")

		s, err := mgr.Login(c, models.Credentials{Username: "nils", Password: "Str0ng!pass"})
		testutil.AssertNoError(t, err)
		if !s.IsAuthenticated() {
			t.Fatal("expected authenticated session after login")
		}

		cookie := sessionCookie(w)
		if cookie == nil {
			t.Fatal("expected session cookie to be set")
		}
		if cookie.MaxAge != 1*24*60*60 {
			t.Errorf("expected one-day retention, got %d", cookie.MaxAge)
		}
		if cookie.SameSite != http.SameSiteLaxMode {
			t.Errorf("expected SameSite=Lax, got %v", cookie.SameSite)
		}
	})

	t.Run("remember_me_extends_retention", func(t *testing.T) {
		token := testutil.SignedToken(t, "7", "nils", "User", time.Now().Add(time.Hour))
		backend := loginBackend(t, token)
		mgr := NewManager(api.NewClient(backend.URL), testConfig())
		c, w := testContext(t, "")

		_, err := mgr.Login(c, models.Credentials{Username: "nils", Password: "Str0ng!pass", KeepLoggedIn: true})
		testutil.AssertNoError(t, err)

		cookie := sessionCookie(w)
		if cookie == nil {
			t.Fatal("expected session cookie to be set")
		}
		if cookie.MaxAge != 7*24*60*60 {
			t.Errorf("expected seven-day retention, got %d", cookie.MaxAge)
		}
	})

	t.Run("rejection_propagates_server_message", func(t *testing.T) {
		backend := loginBackend(t, "unused")
		mgr := NewManager(api.NewClient(backend.URL), testConfig())
		c, w := testContext(t, "")

		_, err := mgr.Login(c, models.Credentials{Username: "nils", Password: "wrongwrong1!"})
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		if err.Error() != "Invalid username or password" {
			t.Errorf("expected server message verbatim, got %q", err.Error())
		}
		if sessionCookie(w) != nil {
			t.Error("no cookie may be set on a failed login")
		}
	})

	t.Run("unusable_token_fails_login", func(t *testing.T) {
		backend := loginBackend(t, "not-a-jwt")
		mgr := NewManager(api.NewClient(backend.URL), testConfig())
		c, w := testContext(t, "")

		_, err := mgr.Login(c, models.Credentials{Username: "nils", Password: "Str0ng!pass"})
		testutil.AssertAppError(t, err, "SERVER_ERROR")
		if sessionCookie(w) != nil {
			t.Error("no cookie may be set when the token cannot be decoded")
		}
	})
}

func TestLogout(t *testing.T) {
	mgr := NewManager(nil, testConfig())
	token := testutil.SignedToken(t, "7", "nils", "User", time.Now().Add(time.Hour))
	c, w := testContext(t, token)

	mgr.Logout(c)
	if !cookieCleared(w) {
		t.Error("expected logout to clear the cookie")
	}
}
