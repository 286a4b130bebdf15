// Package config loads the checklist settings from an optional YAML file
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/errors"
)

// Config is the file layout
type Config struct {
	Redis RedisConfig `yaml:"redis"`

	// Profile namespaces every stored key
	Profile string `yaml:"profile"`

	// StartView is the category shown first
	StartView string `yaml:"start_view"`
}

// RedisConfig describes the server holding the selections
type RedisConfig struct {
	Endpoint        string        `yaml:"endpoint"`
	PoolSize        int           `yaml:"pool_size"`
	MinIdleConns    int           `yaml:"min_idle_conns"`
	MaxRetries      int           `yaml:"max_retries"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	UseTLS          bool          `yaml:"use_tls"`
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		Redis: RedisConfig{
			Endpoint:   "localhost:6379",
			PoolSize:   4,
			MaxRetries: 1,
		},
		StartView: string(loadout.CategoryArmor),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("redis.endpoint", c.Redis.Endpoint, vb)
	errors.ValidateRange("redis.pool_size", c.Redis.PoolSize, 0, 1000, vb)
	// pool_size 0 leaves the go-redis default
	maxIdle := c.Redis.PoolSize
	if maxIdle == 0 {
		maxIdle = 1000
	}
	errors.ValidateRange("redis.min_idle_conns", c.Redis.MinIdleConns, 0, maxIdle, vb)
	errors.ValidateRange("redis.max_retries", c.Redis.MaxRetries, -1, 10, vb)

	if _, ok := loadout.ParseCategory(c.StartView); !ok {
		vb.InvalidField("start_view", "must be armor or tools")
	}

	return vb.Build()
}

// View returns the start view as a category
func (c *Config) View() loadout.Category {
	category, ok := loadout.ParseCategory(c.StartView)
	if !ok {
		return loadout.CategoryArmor
	}
	return category
}
