package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from config file", func(t *testing.T) {
		// Given: a config file overriding a few fields
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
http-port: "9090"
sqlite-storage-path: /tmp/games.db
redis:
  host: redis
  port: "6380"
jwt:
  secret-key: s3cret
  ttl: 30m
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest fall back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "/tmp/games.db", conf.SQLiteStoragePath)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "s3cret", conf.JWT.SecretKey)
		assert.Equal(t, 30*time.Minute, conf.JWT.TTL)
		assert.Equal(t, 20, conf.RateLimit.Burst)
		assert.Equal(t, 16, conf.WebSocket.SendBuffer)
		assert.False(t, conf.GoogleOAuth.Enabled())
	})

	t.Run("Falls back to environment when the file is missing", func(t *testing.T) {
		// Given: no config file and a couple of env vars
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("ACCESS_TOKEN_TTL", "2h")

		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: env vars and defaults are used
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, 2*time.Hour, conf.JWT.TTL)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Returns error for malformed file", func(t *testing.T) {
		// Given: a file that is not valid yaml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
	})
}
