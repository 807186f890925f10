package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(lookupFrom(nil))

	assert.Empty(t, cfg.BackendURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, EnvMarker, cfg.EnvMarker)
	assert.Equal(t, FallbackBackendURL, cfg.Origin())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(lookupFrom(map[string]string{
		"BACKEND_URL":  "https://backend.internal/",
		"PORT":         "3000",
		"PREFORK":      "true",
		"LOG_REQUESTS": "true",
		"HTTP_TIMEOUT": "4",
	}))

	assert.Equal(t, "https://backend.internal/", cfg.BackendURL)
	assert.Equal(t, "https://backend.internal", cfg.Origin())
	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.Prefork)
	assert.True(t, cfg.LogRequests)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
}

func TestFromEnvIgnoresBadTimeout(t *testing.T) {
	cfg := FromEnv(lookupFrom(map[string]string{"HTTP_TIMEOUT": "soon"}))
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend_url: https://from-file.example\nport: \"9000\"\ntimeout: 30\n"), 0o600))

	cfg, err := LoadFile(path, FromEnv(lookupFrom(map[string]string{"BACKEND_URL": "https://from-env.example"})))
	require.NoError(t, err)

	assert.Equal(t, "https://from-file.example", cfg.Origin())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.NotNil(t, cfg.Now)
}

func TestLoadFileMissing(t *testing.T) {
	base := Default()
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), base)
	require.NoError(t, err)
	assert.Equal(t, base.Port, cfg.Port)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0o600))

	_, err := LoadFile(path, Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}
