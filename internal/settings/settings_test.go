package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "authsrv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", s.ListenAddr)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "127.0.0.1:6379", s.Redis.Addr)
	assert.Equal(t, 60, s.Token.TTLSeconds)
	assert.Equal(t, "https://graph.facebook.com/me", s.External.Endpoint)
	assert.Empty(t, s.External.IdentityPrefix)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
listen_addr: ":9000"
log_level: debug
redis:
  addr: "redis.internal:6379"
  db: 2
token:
  ttl_seconds: 120
external:
  endpoint: "https://graph.example.test/me"
  identity_prefix: "fb:"
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", s.ListenAddr)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "redis.internal:6379", s.Redis.Addr)
	assert.Equal(t, 2, s.Redis.DB)
	assert.Equal(t, 120, s.Token.TTLSeconds)
	assert.Equal(t, "https://graph.example.test/me", s.External.Endpoint)
	assert.Equal(t, "fb:", s.External.IdentityPrefix)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, `
listen_addr: ":9000"
redis:
  addr: "redis.internal:6379"
`)

	t.Setenv("AUTHSRV_LISTEN_ADDR", ":7000")
	t.Setenv("AUTHSRV_REDIS_ADDR", "other:6379")
	t.Setenv("AUTHSRV_REDIS_DB", "5")
	t.Setenv("AUTHSRV_TOKEN_TTL_SECONDS", "30")
	t.Setenv("AUTHSRV_IDENTITY_PREFIX", "fb:")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", s.ListenAddr)
	assert.Equal(t, "other:6379", s.Redis.Addr)
	assert.Equal(t, 5, s.Redis.DB)
	assert.Equal(t, 30, s.Token.TTLSeconds)
	assert.Equal(t, "fb:", s.External.IdentityPrefix)
}

func TestLoadRejectsMalformedEnv(t *testing.T) {
	t.Setenv("AUTHSRV_REDIS_DB", "not-a-number")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := writeFile(t, `
token:
  ttl_seconds: 0
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, "listen_addr: [I am not valid\n")

	_, err := Load(path)
	require.Error(t, err)
}
