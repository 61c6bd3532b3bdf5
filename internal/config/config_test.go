package config_test

import (
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/roster/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 9090, cfg.Monitoring.Port)
	assert.Empty(t, cfg.Roster.SeedFile)
	assert.Empty(t, cfg.TUI.LogFile)
}

func Test_MustLoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "config.yaml")
	filet.File(t, path, `
env: production
http:
  address: "127.0.0.1:8000"
monitoring:
  port: 9100
roster:
  seed_file: /srv/roster.html
tui:
  log_file: /tmp/roster.log
`)
	t.Setenv("CONFIG_PATH", path)

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "127.0.0.1:8000", cfg.HTTP.Address)
	assert.Equal(t, 9100, cfg.Monitoring.Port)
	assert.Equal(t, "/srv/roster.html", cfg.Roster.SeedFile)
	assert.Equal(t, "/tmp/roster.log", cfg.TUI.LogFile)
}

func Test_MustLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ROSTER_ENV", "development")
	t.Setenv("ROSTER_HTTP_ADDRESS", ":9999")
	t.Setenv("ROSTER_MONITORING_PORT", "9200")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":9999", cfg.HTTP.Address)
	assert.Equal(t, 9200, cfg.Monitoring.Port)
}

func TestMustLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	t.Setenv("CONFIG_PATH", path)

	assert.PanicsWithValue(t, "config file does not exist: "+path, func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ROSTER_MONITORING_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse monitoring port from configuration", func() {
		config.MustLoad()
	})
}
