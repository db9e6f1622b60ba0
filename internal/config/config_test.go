package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, c.ServerPort)
	assert.Equal(t, "./marketplace.db", c.DatabasePath)
	assert.Equal(t, "test-secret", c.JWTSecret)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.False(t, c.AllowAnonymousLocations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("ALLOW_ANONYMOUS_LOCATIONS", "true")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, c.ServerPort)
	assert.Equal(t, "/tmp/test.db", c.DatabasePath)
	assert.Equal(t, 30*time.Minute, c.TokenTTL)
	assert.True(t, c.AllowAnonymousLocations)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
