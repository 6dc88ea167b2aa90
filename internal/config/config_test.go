package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

const sampleConfig = `
[server]
http_port = 8090

[database]
host = "db"
port = 5433
user = "rooms"
password = "from-file"
dbname = "rooms"

[booking]
semester_start = "2025-08-25"
semester_end = "2025-12-05"
timezone = "America/New_York"

[libcal]
enabled = true
window_days = 3

[libcal.items]
"105593" = "lib-305"
"105594" = "lib-306"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv.Load читает .env из текущей директории
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "host=db port=5433 user=rooms password=from-file dbname=rooms sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "BullSpace", cfg.Booking.DefaultSource)
	assert.Equal(t, 3, cfg.LibCal.WindowDays)
	assert.Equal(t, 1729, cfg.LibCal.LocationID)
	assert.Equal(t, map[string]string{"105593": "lib-305", "105594": "lib-306"}, cfg.LibCal.Items)

	start, end, err := cfg.Booking.SemesterWindow()
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2025, 8, 25), start)
	assert.Equal(t, types.NewDate(2025, 12, 5), end)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LIBCAL_URL", "http://libcal.test/grid")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "http://libcal.test/grid", cfg.LibCal.URL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), ".env"), []byte("REDIS_PASSWORD=secret\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("REDIS_PASSWORD") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Redis.Password)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	path := writeConfig(t, sampleConfig)
	t.Setenv("HTTP_PORT", "eighty")
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "dbname", mutate: func(c *Config) { c.Database.DBName = "" }},
		{name: "semester order", mutate: func(c *Config) { c.Booking.SemesterEnd = "2025-01-01" }},
		{name: "semester format", mutate: func(c *Config) { c.Booking.SemesterStart = "08/25/2025" }},
		{name: "timezone", mutate: func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }},
		{name: "redis addr", mutate: func(c *Config) { c.Redis.Enabled = true; c.Redis.Addr = "" }},
		{name: "libcal window", mutate: func(c *Config) { c.LibCal.Enabled = true; c.LibCal.WindowDays = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Database.DBName = "rooms"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
