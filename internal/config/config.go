package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/lootscale/internal/database"
	"github.com/lawnchairsociety/lootscale/internal/logger"
)

// Catalog sources
const (
	CatalogSourceYAML     = "yaml"
	CatalogSourceDatabase = "database"
)

// Config holds lootscale configuration, read from data/lootscale.yaml.
type Config struct {
	Catalog  CatalogConfig   `yaml:"catalog"`
	Database database.Config `yaml:"database"`
	Preview  PreviewConfig   `yaml:"preview"`
	Logging  logger.Config   `yaml:"logging"`
}

// CatalogConfig selects where the item catalog is loaded from.
type CatalogConfig struct {
	// Source is "yaml" or "database"
	Source string `yaml:"source"`

	// ItemsFile is the YAML items file used when Source is "yaml"
	ItemsFile string `yaml:"items_file"`
}

// PreviewConfig holds settings for the loot preview WebSocket server.
type PreviewConfig struct {
	// Address is the listen address (e.g. ":4480").
	Address string `yaml:"address"`

	// AllowedOrigins is a list of origins allowed to connect via WebSocket.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`

	// TokenHash is a bcrypt hash of the access token. Empty disables authentication.
	TokenHash string `yaml:"token_hash"`

	// MaxConnsPerIP limits concurrent connections from one address. 0 means unlimited.
	MaxConnsPerIP int `yaml:"max_conns_per_ip"`

	// MaxConnsTotal limits concurrent connections overall. 0 means unlimited.
	MaxConnsTotal int `yaml:"max_conns_total"`

	// MaxAuthFailures is the number of bad tokens from one address before lockout.
	MaxAuthFailures int `yaml:"max_auth_failures"`

	// AuthLockout is the initial lockout; it doubles on each repeat up to AuthMaxLockout.
	AuthLockout    time.Duration `yaml:"auth_lockout"`
	AuthMaxLockout time.Duration `yaml:"auth_max_lockout"`
}

// DefaultConfig returns a Config with secure defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Source:    CatalogSourceYAML,
			ItemsFile: "data/items.yaml",
		},
		Database: database.DefaultConfig("data/lootscale.db"),
		Preview: PreviewConfig{
			Address:         ":4480",
			AllowedOrigins:  []string{}, // Same-origin only by default
			MaxMessageSize:  4096,
			MaxConnsPerIP:   3,
			MaxConnsTotal:   100,
			MaxAuthFailures: 5,
			AuthLockout:     30 * time.Second,
			AuthMaxLockout:  5 * time.Minute,
		},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns the default config.
// LOG_* environment variables are applied on top in either case.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			config.Logging.ApplyEnvOverrides()
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config YAML: %w", err)
	}

	config.Logging.ApplyEnvOverrides()

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks the catalog source and, when it is the database, the database settings.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceYAML:
		if c.Catalog.ItemsFile == "" {
			return fmt.Errorf("catalog source yaml requires items_file")
		}
	case CatalogSourceDatabase:
		if err := c.Database.Validate(); err != nil {
			return fmt.Errorf("invalid database config: %w", err)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	return nil
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *PreviewConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means a non-browser client
	}

	// "http://localhost:3000" -> "localhost:3000"
	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
