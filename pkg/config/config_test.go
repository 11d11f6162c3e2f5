package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `
api:
  base_url: "http://news.example.com:9000"
  timeout: "10s"
  rate_limit: 30
  burst_limit: 2
app:
  debug: true
  default_user_id: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://news.example.com:9000", cfg.API.BaseURL)
	assert.Equal(t, "10s", cfg.API.Timeout)
	assert.Equal(t, 30, cfg.API.RateLimit)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 7, cfg.App.DefaultUserID)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("NEWSCOPE_API_URL", "http://envhost:8000")

	path := writeTempConfig(t, `
api:
  base_url: "${NEWSCOPE_API_URL}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://envhost:8000", cfg.API.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	path := writeTempConfig(t, `
api:
  timeout: "not-a-duration"
`)

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestGetDefaults(t *testing.T) {
	api := (&APIConfig{}).GetDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", api.BaseURL)
	assert.Equal(t, "30s", api.Timeout)
	assert.Equal(t, 60, api.RateLimit)
	assert.Equal(t, 5, api.BurstLimit)

	// Заполненные поля не перетираются
	custom := (&APIConfig{BaseURL: "http://x", RateLimit: 1}).GetDefaults()
	assert.Equal(t, "http://x", custom.BaseURL)
	assert.Equal(t, 1, custom.RateLimit)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	assert.False(t, cfg.App.Debug)
}
