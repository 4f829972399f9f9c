package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env    string `envconfig:"APP_ENV" default:"development"`
	Port   int    `envconfig:"APP_PORT" default:"8080"`
	CORS   CORSConfig
	Notion NotionConfig
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// Notion API configuration. The API key and database id are the two hard
// preconditions of every operation in this service.
type NotionConfig struct {
	APIKey     string        `envconfig:"NOTION_API_KEY" required:"true"`
	DatabaseID string        `envconfig:"NOTION_DATABASE_ID" required:"true"`
	Timeout    time.Duration `envconfig:"NOTION_TIMEOUT" default:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if strings.TrimSpace(c.Notion.APIKey) == "" {
		return fmt.Errorf("NOTION_API_KEY is missing")
	}
	if strings.TrimSpace(c.Notion.DatabaseID) == "" {
		return fmt.Errorf("NOTION_DATABASE_ID is missing")
	}
	if c.Notion.Timeout <= 0 {
		return fmt.Errorf("NOTION_TIMEOUT must be positive")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, CORS.Origins=%d, Notion.Timeout=%s}",
		c.Env, c.Port, len(c.CORS.TrustedOrigins), c.Notion.Timeout)
}
