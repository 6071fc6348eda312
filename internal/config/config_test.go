package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerfrill/showcase-backend-go/internal/choreography"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "RATE_LIMIT", "DB_PATH", "CATALOG_SOURCE", "CHOREOGRAPHY_PRESET", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  port: ":9090"
  rate_limit: 30
  rate_window: 30s
database:
  path: /tmp/catalog.db
catalog:
  source: sqlite
choreography:
  preset: soft-fade
  stable_fraction: 0.5
  pulse: parabola
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, CatalogSQLite, cfg.Catalog.Source)
	assert.Equal(t, "debug", cfg.Logging.Level)

	ch, err := cfg.Choreography.Resolve()
	require.NoError(t, err)
	assert.Equal(t, choreography.PresetSoftFade, ch.Name)
	assert.Equal(t, 0.5, ch.StableFraction)
	assert.Equal(t, choreography.PulseParabola, ch.Pulse)
	assert.Equal(t, choreography.EaseInOutCubic, ch.Easing)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":7000")
	t.Setenv("CATALOG_SOURCE", "sqlite")
	t.Setenv("DB_PATH", "/var/lib/catalog.db")
	t.Setenv("CHOREOGRAPHY_PRESET", "depth-blur")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("RATE_LIMIT", "5")

	cfg, err := Load(writeConfig(t, "server:\n  port: \":9090\"\n"))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
	assert.Equal(t, "/var/lib/catalog.db", cfg.Database.Path)
	assert.Equal(t, CatalogSQLite, cfg.Catalog.Source)
	assert.Equal(t, "depth-blur", cfg.Choreography.Preset)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Server.RateLimit)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":          "server: [",
		"unknown source":    "catalog:\n  source: postgres\n",
		"unknown level":     "logging:\n  level: chatty\n",
		"unknown preset":    "choreography:\n  preset: wobble\n",
		"bad override":      "choreography:\n  stable_fraction: 1.5\n",
		"negative limit":    "server:\n  rate_limit: -1\n",
		"sqlite needs path": "catalog:\n  source: sqlite\ndatabase:\n  path: \"\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	t.Run("bad RATE_LIMIT", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT", "lots")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestResolveDefaultsToHero(t *testing.T) {
	cfg, err := ChoreographyConfig{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, choreography.DefaultConfig(), cfg)

	_, err = ChoreographyConfig{Preset: "nope"}.Resolve()
	assert.ErrorIs(t, err, choreography.ErrInvalidConfig)
}
