package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/localstate"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Fixed document-store coordinates. They are not externally configurable.
const (
	DatabaseName   = "grocery_manager"
	CollectionName = "grocery_lists"
)

// Config holds the configuration for the grocery service.
// Tags carry the full GROCERY_ name so unprefixed variables are never consulted.
type Config struct {
	// Build target selects high-level environment: local, cloud-dev, cloud
	BuildTarget string `envconfig:"GROCERY_BUILD_TARGET" default:"cloud-dev"`

	// Derived or override driver: mongo, postgres, sqlite, firestore, memory
	DBDriver string `envconfig:"GROCERY_DB_DRIVER" default:"auto"`

	Environment  Environment `envconfig:"GROCERY_ENVIRONMENT" default:"development"`
	GCPProjectID string      `envconfig:"GROCERY_GCP_PROJECT_ID" default:""`

	// HTTP Configuration
	HTTPPort int `envconfig:"GROCERY_HTTP_PORT" default:"8000"`

	// Store connection string. GROCERY_MONGO_URI wins, plain MONGO_URI is accepted as well.
	MongoURI string `envconfig:"GROCERY_MONGO_URI"`

	// Postgres Configuration
	PostgresDSN string `envconfig:"GROCERY_POSTGRES_DSN" default:""`

	// SQLite file; derived under the user's home directory when empty
	SQLitePath string `envconfig:"GROCERY_SQLITE_PATH" default:""`

	// Health and bootstrap timing
	HealthIntervalSeconds     int `envconfig:"GROCERY_HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"GROCERY_HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
	BootstrapTimeoutSeconds   int `envconfig:"GROCERY_BOOTSTRAP_TIMEOUT_SECONDS" default:"5"`
}

// plainEnv holds the only unprefixed variable the service reads.
type plainEnv struct {
	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
}

var allowedDrivers = map[string]bool{
	"mongo":     true,
	"postgres":  true,
	"sqlite":    true,
	"firestore": true,
	"memory":    true,
}

// ResolveDefaults validates BuildTarget and derives DBDriver when set to "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDB string

	switch c.BuildTarget {
	case "local":
		defaultDB = "sqlite"
	case "cloud-dev":
		defaultDB = "mongo"
	case "cloud":
		defaultDB = "firestore"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = defaultDB
	}
	if !allowedDrivers[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}

	if c.DBDriver == "sqlite" && c.SQLitePath == "" {
		p, err := localstate.DBPath()
		if err != nil {
			return fmt.Errorf("resolve sqlite path: %w", err)
		}
		c.SQLitePath = p
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Environment variables should be prefixed with GROCERY_
// Example: GROCERY_DB_DRIVER, GROCERY_HTTP_PORT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.MongoURI == "" {
		var plain plainEnv
		if err := envconfig.Process("", &plain); err != nil {
			return nil, fmt.Errorf("failed to process environment variables: %w", err)
		}
		cfg.MongoURI = plain.MongoURI
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("database", DatabaseName).
		Str("collection", CollectionName).
		Str("postgres_dsn_present", func() string {
			if cfg.PostgresDSN != "" {
				return "true"
			}
			return "false"
		}()).
		Str("sqlite_path", cfg.SQLitePath).
		Str("project", cfg.GCPProjectID).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		BuildTarget:               "cloud-dev",
		DBDriver:                  "memory",
		Environment:               EnvTesting,
		HTTPPort:                  8000,
		MongoURI:                  "mongodb://localhost:27017",
		HealthIntervalSeconds:     1,
		HealthProbeTimeoutSeconds: 1,
		BootstrapTimeoutSeconds:   1,
	}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
