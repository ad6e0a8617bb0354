package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		Backend         string `yaml:"backend" json:"backend" jsonschema:"default=sqlite,enum=sqlite,enum=bolt,description=Storage backend"`
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedbox.db?cache=shared&mode=rwc,description=SQLite connection string"`
		Path            string `yaml:"path" json:"path" jsonschema:"default=feedbox.bolt,description=Bolt database file path"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Fetch struct {
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-request feed fetch timeout"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Feedbox/1.0,description=User agent for feed requests"`
	} `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Categories []CategorySeed `yaml:"categories" json:"categories" jsonschema:"description=Categories seeded at startup"`
}

// CategorySeed is one category created at startup if missing
type CategorySeed struct {
	Name  string `yaml:"name" json:"name" jsonschema:"required,description=Category display name"`
	Color string `yaml:"color" json:"color" jsonschema:"description=Category color for UI grouping"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// setDefaults fills unset fields with defaults
func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.Backend == "" {
		cfg.Database.Backend = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedbox.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "feedbox.bolt"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 10 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Feedbox/1.0"
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = []CategorySeed{
			{Name: "Tech", Color: "#3b82f6"},
			{Name: "News", Color: "#ef4444"},
			{Name: "Blogs", Color: "#10b981"},
			{Name: "Other", Color: "#6366f1"},
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Database.Backend != "sqlite" && cfg.Database.Backend != "bolt" {
		return fmt.Errorf("database.backend must be sqlite or bolt, got %q", cfg.Database.Backend)
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}

	for _, c := range cfg.Categories {
		if c.Name == "" {
			return fmt.Errorf("category name must not be empty")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
