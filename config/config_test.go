package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
}

func TestLoad_Defaults(t *testing.T) {
	validEnv(t)

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "boat-rental", cfg.Service.Name)
	assert.Equal(t, "8080", cfg.Service.Port)
	assert.Equal(t, TransportCookie, cfg.Auth.Transport)
	assert.Equal(t, "br_session", cfg.Auth.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.StrictLogout)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	validEnv(t)
	t.Setenv("SESSION_TRANSPORT", "header")
	t.Setenv("TOKEN_TTL_MINUTES", "30")
	t.Setenv("STRICT_LOGOUT", "true")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, TransportHeader, cfg.Auth.Transport)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.StrictLogout)
}

func TestValidate_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")

	cfg := Load()
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadTransport(t *testing.T) {
	validEnv(t)
	t.Setenv("SESSION_TRANSPORT", "querystring")

	cfg := Load()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TRANSPORT")
}

func TestValidate_BadTTL(t *testing.T) {
	validEnv(t)
	t.Setenv("TOKEN_TTL_MINUTES", "-5")

	cfg := Load()
	assert.Error(t, cfg.Validate())
}
