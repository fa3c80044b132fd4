// Package config loads the settings of the automaton command and HTTP host
// from defaults, an optional YAML or JSON file and AUTOMATON_* variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultRedisPrefix = "automaton:"
	defaultStoreDir    = ".automaton/documents"
	defaultServerAddr  = ":8080"
	defaultMetricsPath = "/metrics"
	defaultRunTTL      = 30 * time.Minute
	defaultLogLevel    = "info"
)

// RedisConfig selects the Redis backend of the document store. An empty
// Addr selects the file store.
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

// StoreConfig configures the file store used when Redis is not configured.
type StoreConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

// ServerConfig configures the HTTP host. Debug runs untouched for RunTTL
// are dropped.
type ServerConfig struct {
	Addr        string        `yaml:"addr" json:"addr"`
	MetricsPath string        `yaml:"metrics_path" json:"metrics_path"`
	RunTTL      time.Duration `yaml:"run_ttl" json:"run_ttl"`
}

// Config holds the settings of the command line tool and the HTTP host.
type Config struct {
	LogLevel string       `yaml:"log_level" json:"log_level"`
	Redis    RedisConfig  `yaml:"redis" json:"redis"`
	Store    StoreConfig  `yaml:"store" json:"store"`
	Server   ServerConfig `yaml:"server" json:"server"`
}

// Default returns a Config with the defaults every setting falls back to.
func Default() Config {
	return Config{
		LogLevel: defaultLogLevel,
		Redis:    RedisConfig{Prefix: defaultRedisPrefix},
		Store:    StoreConfig{Dir: defaultStoreDir},
		Server: ServerConfig{
			Addr:        defaultServerAddr,
			MetricsPath: defaultMetricsPath,
			RunTTL:      defaultRunTTL,
		},
	}
}

// Merge applies the non-zero values of source onto c.
func (c *Config) Merge(source *Config) {
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}

	if source.Redis.Addr != "" {
		c.Redis.Addr = source.Redis.Addr
	}
	if source.Redis.Password != "" {
		c.Redis.Password = source.Redis.Password
	}
	if source.Redis.DB != 0 {
		c.Redis.DB = source.Redis.DB
	}
	if source.Redis.Prefix != "" {
		c.Redis.Prefix = source.Redis.Prefix
	}
	if source.Redis.TTL > 0 {
		c.Redis.TTL = source.Redis.TTL
	}

	if source.Store.Dir != "" {
		c.Store.Dir = source.Store.Dir
	}

	if source.Server.Addr != "" {
		c.Server.Addr = source.Server.Addr
	}
	if source.Server.MetricsPath != "" {
		c.Server.MetricsPath = source.Server.MetricsPath
	}
	if source.Server.RunTTL > 0 {
		c.Server.RunTTL = source.Server.RunTTL
	}
}

// Load reads a YAML or JSON config file (by extension), merges it onto the
// defaults and applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		var loaded Config
		if strings.ToLower(filepath.Ext(path)) == ".json" {
			err = json.Unmarshal(data, &loaded)
		} else {
			err = yaml.Unmarshal(data, &loaded)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		cfg.Merge(&loaded)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overrides settings from AUTOMATON_* environment variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var env Config

	if v, ok := lookup("AUTOMATON_LOG_LEVEL"); ok {
		env.LogLevel = v
	}
	if v, ok := lookup("AUTOMATON_REDIS_ADDR"); ok {
		env.Redis.Addr = v
	}
	if v, ok := lookup("AUTOMATON_REDIS_PASSWORD"); ok {
		env.Redis.Password = v
	}
	if v, ok := lookup("AUTOMATON_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AUTOMATON_REDIS_DB %q: %w", v, err)
		}
		env.Redis.DB = db
	}
	if v, ok := lookup("AUTOMATON_STORE_DIR"); ok {
		env.Store.Dir = v
	}
	if v, ok := lookup("AUTOMATON_SERVER_ADDR"); ok {
		env.Server.Addr = v
	}

	c.Merge(&env)

	return nil
}
