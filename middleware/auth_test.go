package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramon11/boat-rental/config"
	"github.com/dramon11/boat-rental/internal/auth"
)

type fakeSessions struct {
	live map[string]bool
}

func (f *fakeSessions) Create(ctx context.Context, id string, userID int, expiresAt time.Time) error {
	f.live[id] = true
	return nil
}

func (f *fakeSessions) Exists(ctx context.Context, id string) (bool, error) {
	return f.live[id], nil
}

func (f *fakeSessions) Delete(ctx context.Context, id string) error {
	delete(f.live, id)
	return nil
}

func (f *fakeSessions) DeleteExpired(ctx context.Context) error { return nil }

func guardRouter(t *testing.T, cfg SessionGuardConfig) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reached := false
	r := gin.New()
	protected := r.Group("/")
	protected.Use(SessionGuard(cfg))
	protected.GET("/clients", func(c *gin.Context) {
		reached = true
		id, ok := UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	protected.GET("/api/me", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	return r, &reached
}

func cookieGuardConfig(tokens *auth.TokenManager) SessionGuardConfig {
	return SessionGuardConfig{
		Tokens:     tokens,
		Transport:  config.TransportCookie,
		CookieName: "br_session",
		LoginPath:  "/login",
	}
}

func TestSessionGuard_NoToken_BrowserRedirects(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r, reached := guardRouter(t, cookieGuardConfig(tokens))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.False(t, *reached)
}

func TestSessionGuard_NoToken_APIGets401(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r, reached := guardRouter(t, cookieGuardConfig(tokens))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	assert.False(t, *reached)
}

func TestSessionGuard_ValidCookie(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r, reached := guardRouter(t, cookieGuardConfig(tokens))

	token, _, err := tokens.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.AddCookie(&http.Cookie{Name: "br_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.True(t, *reached)
}

func TestSessionGuard_ExpiredToken_ClearsCookie(t *testing.T) {
	tokens := auth.NewTokenManager("secret", -1*time.Minute)
	r, reached := guardRouter(t, cookieGuardConfig(tokens))

	token, _, err := tokens.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.AddCookie(&http.Cookie{Name: "br_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, *reached)

	// The stale cookie must be discarded on rejection.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "br_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionGuard_TamperedToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r, reached := guardRouter(t, cookieGuardConfig(tokens))

	token, _, err := auth.NewTokenManager("other-secret", time.Hour).Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.AddCookie(&http.Cookie{Name: "br_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, *reached)
}

func TestSessionGuard_BearerHeader(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r, reached := guardRouter(t, SessionGuardConfig{
		Tokens:    tokens,
		Transport: config.TransportHeader,
		LoginPath: "/login",
	})

	token, _, err := tokens.Issue(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestSessionGuard_HeaderMode_IgnoresCookie(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r, reached := guardRouter(t, SessionGuardConfig{
		Tokens:     tokens,
		Transport:  config.TransportHeader,
		CookieName: "br_session",
		LoginPath:  "/login",
	})

	token, _, err := tokens.Issue(7)
	require.NoError(t, err)

	// A valid token on the wrong transport does not authenticate.
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.AddCookie(&http.Cookie{Name: "br_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, *reached)
}

func TestSessionGuard_StrictMode_RevokedSessionRejected(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	sessions := &fakeSessions{live: map[string]bool{}}

	cfg := cookieGuardConfig(tokens)
	cfg.Sessions = sessions
	r, reached := guardRouter(t, cfg)

	token, jti, err := tokens.Issue(42)
	require.NoError(t, err)
	sessions.live[jti] = true

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.AddCookie(&http.Cookie{Name: "br_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)

	// Revoke and retry: the still-valid JWT no longer authenticates.
	*reached = false
	delete(sessions.live, jti)

	req = httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.AddCookie(&http.Cookie{Name: "br_session", Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, *reached)
}
