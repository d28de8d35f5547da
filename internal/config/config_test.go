package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Address)
	assert.Equal(t, "public", cfg.Server.PublicDir)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "exercise_tracker", cfg.Database.Name)
	assert.Equal(t, "UTC", cfg.App.Timezone)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  address: \":9090\"\n  write_timeout: 30s\ndatabase:\n  driver: memory\n  name: tracker_test\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "tracker_test", cfg.Database.Name)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_NAME", "from_env")
	t.Setenv("APP_TIMEZONE", "Europe/Berlin")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Database.Name)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadConfig_LegacyEnvNames(t *testing.T) {
	t.Setenv("PORT", "4321")
	t.Setenv("ATLAS_URI", "mongodb://atlas.example:27017")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":4321", cfg.Server.Address)
	assert.Equal(t, "mongodb://atlas.example:27017", cfg.Database.URI)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_DRIVER=memory\n"), 0o600))
	// godotenv sets the process env; make sure it is cleared afterwards.
	t.Setenv("DATABASE_DRIVER", "")
	require.NoError(t, os.Unsetenv("DATABASE_DRIVER"))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnknownTimezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
