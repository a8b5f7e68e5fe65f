package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aboubacar04/biosen-console/pkg/config"
)

func TestLoad_ValeursParDefaut(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "biosen-console", cfg.App.Name)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, "http://localhost:8000/storage", cfg.API.StorageURL)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.Empty(t, cfg.Session.FilePath)
}

func TestLoad_SurchargeParEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "https://api.biosen.sn/api")
	t.Setenv("API_TIMEOUT_SECONDS", "30")
	t.Setenv("SESSION_FILE", "/tmp/biosen-session.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "https://api.biosen.sn/api", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, "/tmp/biosen-session.json", cfg.Session.FilePath)
}

func TestAPIConfig_Timeout(t *testing.T) {
	c := config.APIConfig{TimeoutSeconds: 20}
	assert.Equal(t, 20*time.Second, c.Timeout())
}

func TestSessionConfig_Path(t *testing.T) {
	t.Run("chemin explicite", func(t *testing.T) {
		c := config.SessionConfig{FilePath: "/var/lib/biosen/session.json"}
		assert.Equal(t, "/var/lib/biosen/session.json", c.Path())
	})

	t.Run("par défaut sous le home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		c := config.SessionConfig{}
		assert.Equal(t, filepath.Join(home, ".biosen", "session.json"), c.Path())
	})
}
