package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/bec-engine/")
	v.AddConfigPath("$HOME/.bec-engine")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("BEC_ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Risk scoring defaults
	v.SetDefault("engine.weights.domain", 0.4)
	v.SetDefault("engine.weights.sender", 0.3)
	v.SetDefault("engine.weights.content", 0.3)
	v.SetDefault("engine.thresholds.high_risk", 70)
	v.SetDefault("engine.thresholds.medium_risk", 40)

	// Content analysis defaults
	v.SetDefault("content.keywords", []string{
		"urgent", "wire transfer", "confidential", "action required",
		"verify account", "immediate", "sensitive",
	})
	v.SetDefault("content.base_confidence", 0.75)
	v.SetDefault("content.confidence_step", 0.10)
	v.SetDefault("content.max_confidence", 0.95)

	// DNS defaults
	v.SetDefault("dns.timeout", "5s")

	// Known-contacts directory defaults
	v.SetDefault("directory.type", "memory")
	v.SetDefault("directory.contacts", map[string]string{})
	v.SetDefault("directory.sqlite_path", "/data/contacts.db")
	v.SetDefault("directory.mysql_dsn", "user:password@tcp(localhost:3306)/bec_engine")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetStringMapString gets a string map value from the configuration
func (c *Config) GetStringMapString(key string) map[string]string {
	return c.v.GetStringMapString(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
