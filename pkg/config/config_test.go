package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "academy", cfg.Database.Name)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Auth.Enabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")
	t.Setenv("API_PREFIX", "/v2/")
	t.Setenv("ENABLE_CACHE", "true")
	t.Setenv("CACHE_TTL", "not-a-duration")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("ENABLE_AUTH", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION", "2h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/v2", cfg.APIPrefix)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, 2*time.Hour, cfg.Auth.Expiration)
}

func TestLoadAuthRequiresSecret(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENABLE_AUTH", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
