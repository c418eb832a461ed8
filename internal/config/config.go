// Package config loads application configuration from a YAML file with
// environment variable overrides for deployment-specific settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Redis    RedisConfig    `yaml:"redis"`
	Mojang   MojangConfig   `yaml:"mojang"`
	Resolver ResolverConfig `yaml:"resolver"`
	Stats    StatsConfig    `yaml:"stats"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig selects the profile store backend
type StorageConfig struct {
	// Type is "memory" or "redis"
	Type string `yaml:"type"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	ProfileTTL   time.Duration `yaml:"profile_ttl"`
}

// MojangConfig holds Mojang API client configuration
type MojangConfig struct {
	BaseURL    string        `yaml:"base_url"`
	SessionURL string        `yaml:"session_url"`
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
}

// ResolverConfig holds name resolution configuration
type ResolverConfig struct {
	// Concurrency caps simultaneous Mojang lookups during a batch
	Concurrency int `yaml:"concurrency"`
}

// StatsConfig locates the stats payload source
type StatsConfig struct {
	// Dir is the world stats/ directory of <uuid>.json files
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Type: "memory",
		},
		Redis: RedisConfig{
			URL:          "redis://localhost:6379",
			PoolSize:     10,
			MinIdleConns: 2,
		},
		Mojang: MojangConfig{
			BaseURL:    "https://api.mojang.com",
			SessionURL: "https://sessionserver.mojang.com",
			Timeout:    10 * time.Second,
			UserAgent:  "statboard",
		},
		Resolver: ResolverConfig{
			Concurrency: 4,
		},
		Stats: StatsConfig{
			Dir: "data/stats",
		},
	}
}

// Load reads configuration from the given YAML file, applies environment
// overrides and validates the result. An empty path loads defaults only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("STATBOARD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("STATBOARD_STORAGE_TYPE"); v != "" {
		c.Storage.Type = v
	}
	if v := os.Getenv("STATBOARD_REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
	if v := os.Getenv("STATBOARD_STATS_DIR"); v != "" {
		c.Stats.Dir = v
	}
	if v := os.Getenv("STATBOARD_MOJANG_URL"); v != "" {
		c.Mojang.BaseURL = v
	}
	if v := os.Getenv("STATBOARD_SESSION_URL"); v != "" {
		c.Mojang.SessionURL = v
	}
}

func (c *Config) validate() error {
	switch c.Storage.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("storage.type must be 'memory' or 'redis', got %q", c.Storage.Type)
	}
	if c.Stats.Dir == "" {
		return fmt.Errorf("stats.dir is required")
	}
	return nil
}
