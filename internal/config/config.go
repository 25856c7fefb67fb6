package config

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/UnknownOlympus/fixturegen/internal/codec"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix prefixes every environment variable, e.g. FIXTUREGEN_SEED.
const envPrefix = "FIXTUREGEN"

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration settings of the fixture generator.
// Every setting has a default that reproduces the checked-in fixture table.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Seed: The seed of the coordinate source.
// - Count: The number of records generated per geometry kind.
// - Output: The path of the generated Go source file.
// - Package, Variable: The package clause and slice name of the generated file.
// - Codec: The WKB/WKT codec to encode with (geom, orb).
// - Verify: Whether records are cross-checked before writing.
// - GeoJSONOutput, MetricsFile: Optional extra outputs, disabled when empty.
// - Database: Optional PostgreSQL fixture store, disabled when the host is empty.
type Config struct {
	Env           string         `mapstructure:"env"`            // Env is the current environment: local, dev, prod.
	Seed          int64          `mapstructure:"seed"`           // Seed of the coordinate source.
	Count         int            `mapstructure:"count"`          // Records per geometry kind.
	Output        string         `mapstructure:"output"`         // Path of the Go source artifact.
	Package       string         `mapstructure:"package"`        // Package clause of the artifact.
	Variable      string         `mapstructure:"variable"`       // Name of the fixture slice.
	Codec         string         `mapstructure:"codec"`          // Codec used to encode records.
	Verify        bool           `mapstructure:"verify"`         // Verify records before writing.
	GeoJSONOutput string         `mapstructure:"geojson_output"` // Path of the GeoJSON companion.
	MetricsFile   string         `mapstructure:"metrics_file"`   // Path of the metrics textfile.
	Database      PostgresConfig `mapstructure:"postgres"`       // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"db_name"`  // Name is the name of the database.
}

// Enabled reports whether fixtures should be published to PostgreSQL.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

// Load reads the optional .env and fixturegen.yaml files and the FIXTUREGEN_*
// environment variables on top of the defaults, then validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("env", "production")
	v.SetDefault("seed", 0)
	v.SetDefault("count", 8)
	v.SetDefault("output", "random.go")
	v.SetDefault("package", "testdata")
	v.SetDefault("variable", "Random")
	v.SetDefault("codec", string(codec.TypeGeom))
	v.SetDefault("verify", true)
	v.SetDefault("geojson_output", "")
	v.SetDefault("metrics_file", "")
	v.SetDefault("postgres.host", "")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db_name", "")

	v.SetConfigName("fixturegen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad loads the configuration and panics when it cannot be used.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	return cfg
}

// Validate checks every value the generator cannot recover from.
func (c *Config) Validate() error {
	var errs []string

	if c.Count <= 0 {
		errs = append(errs, fmt.Sprintf("count must be positive, got %d", c.Count))
	}
	if c.Output == "" {
		errs = append(errs, "output is required")
	}
	if !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Sprintf("package %q is not a Go identifier", c.Package))
	}
	if !token.IsIdentifier(c.Variable) {
		errs = append(errs, fmt.Sprintf("variable %q is not a Go identifier", c.Variable))
	}
	switch codec.Type(c.Codec) {
	case codec.TypeGeom, codec.TypeOrb:
	default:
		errs = append(errs, fmt.Sprintf("codec must be one of geom, orb, got %q", c.Codec))
	}
	if c.Database.Enabled() && c.Database.Name == "" {
		errs = append(errs, "postgres.db_name is required when postgres.host is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
