package config_test

import (
	"os"
	"testing"

	"github.com/UnknownOlympus/fixturegen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 8, cfg.Count)
	assert.Equal(t, "random.go", cfg.Output)
	assert.Equal(t, "testdata", cfg.Package)
	assert.Equal(t, "Random", cfg.Variable)
	assert.Equal(t, "geom", cfg.Codec)
	assert.True(t, cfg.Verify)
	assert.Empty(t, cfg.GeoJSONOutput)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.False(t, cfg.Database.Enabled())
}

func TestMustLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FIXTUREGEN_ENV", "local")
	t.Setenv("FIXTUREGEN_SEED", "42")
	t.Setenv("FIXTUREGEN_COUNT", "3")
	t.Setenv("FIXTUREGEN_OUTPUT", "out/random.go")
	t.Setenv("FIXTUREGEN_CODEC", "orb")
	t.Setenv("FIXTUREGEN_VERIFY", "false")
	t.Setenv("FIXTUREGEN_GEOJSON_OUTPUT", "random.geojson")
	t.Setenv("FIXTUREGEN_POSTGRES_HOST", "testHost")
	t.Setenv("FIXTUREGEN_POSTGRES_PORT", "12345")
	t.Setenv("FIXTUREGEN_POSTGRES_USER", "admin")
	t.Setenv("FIXTUREGEN_POSTGRES_PASSWORD", "adminpass")
	t.Setenv("FIXTUREGEN_POSTGRES_DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, "out/random.go", cfg.Output)
	assert.Equal(t, "orb", cfg.Codec)
	assert.False(t, cfg.Verify)
	assert.Equal(t, "random.geojson", cfg.GeoJSONOutput)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
}

func TestLoad_FromFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("fixturegen.yaml", []byte("seed: 7\nvariable: Geometries\n"), 0o600))
	t.Setenv("FIXTUREGEN_SEED", "9")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed, "environment overrides the file")
	assert.Equal(t, "Geometries", cfg.Variable)
}

func TestLoad_FromDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("FIXTUREGEN_PACKAGE=fixtures\n"), 0o600))
	t.Setenv("FIXTUREGEN_PACKAGE", "")
	require.NoError(t, os.Unsetenv("FIXTUREGEN_PACKAGE"))

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "fixtures", cfg.Package)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		contains string
	}{
		{"zero count", "FIXTUREGEN_COUNT", "0", "count must be positive"},
		{"empty output", "FIXTUREGEN_OUTPUT", "", "output is required"},
		{"package not identifier", "FIXTUREGEN_PACKAGE", "test-data", `package "test-data"`},
		{"variable not identifier", "FIXTUREGEN_VARIABLE", "1st", `variable "1st"`},
		{"unknown codec", "FIXTUREGEN_CODEC", "shapely", `got "shapely"`},
		{"database without name", "FIXTUREGEN_POSTGRES_HOST", "localhost", "postgres.db_name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			cfg, err := config.Load()

			require.Nil(t, cfg)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("fixturegen.yaml", []byte("seed: [unterminated\n"), 0o600))

	cfg, err := config.Load()

	require.Nil(t, cfg)
	require.ErrorContains(t, err, "failed to read config file")
}

func TestMustLoad_Panics(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FIXTUREGEN_COUNT", "-1")

	assert.PanicsWithValue(t,
		"failed to load configuration: invalid configuration: count must be positive, got -1",
		func() { config.MustLoad() },
	)
}
