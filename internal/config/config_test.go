package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
driver = "postgres"
host = "db"
port = 5433
user = "lodge"
password = "secret"
dbname = "lodgeease"

[logs]
level = "debug"

[metrics]
enabled = true

[cache]
enabled = true
ttl = 120

[forecast]
confidence_policy = "coverage_elapsed"
timezone = "Asia/Manila"

[scheduler]
enabled = true
interval = 300
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "defaults are kept for missing keys")
	assert.Equal(t, "host=db port=5433 user=lodge password=secret dbname=lodgeease sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTLDuration())
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.IntervalDuration())

	loc, err := cfg.Forecast.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Manila", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDatabaseDSN, "postgres://lodge@db/lodgeease")
	t.Setenv(EnvHTTPPort, "7070")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "postgres://lodge@db/lodgeease", cfg.Database.DSN())
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_EnvConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, writeConfig(t, sampleConfig))

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "[database]\ndriver = \"mysql\"\n"},
		{name: "unknown policy", content: "[database]\ndbname = \"x\"\n[forecast]\nconfidence_policy = \"magic\"\n"},
		{name: "bad timezone", content: "[database]\ndbname = \"x\"\n[forecast]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "bad port", content: "[server]\nhttp_port = 70000\n[database]\ndbname = \"x\"\n"},
		{name: "cache without ttl", content: "[database]\ndbname = \"x\"\n[cache]\nenabled = true\nttl = 0\n"},
		{name: "broken toml", content: "[server\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestValidate_CacheTTL(t *testing.T) {
	cfg := Default()
	cfg.Cache.Enabled = true
	cfg.Cache.TTL = -5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Cache.Enabled = false
	assert.NoError(t, cfg.Validate())
}

func TestLoad_SQLite(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[database]\ndriver = \"sqlite\"\nsqlite_path = \"/tmp/lodge.db\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/lodge.db", cfg.Database.SQLitePath)
}
