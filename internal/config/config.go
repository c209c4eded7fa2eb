package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig `mapstructure:"cors"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// AuthConfig holds session settings.
type AuthConfig struct {
	SessionTTLHours int `mapstructure:"session_ttl_hours"`
}

// CORSConfig holds allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// FINTRACK_ (e.g. FINTRACK_SERVER_PORT).
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "./fintrack.db")
	v.SetDefault("auth.session_ttl_hours", 24*7)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FINTRACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FINTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
