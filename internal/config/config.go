package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	Mode         string `mapstructure:"mode"`
	BaseURL      string `mapstructure:"base_url"`
	DashboardURL string `mapstructure:"dashboard_url"`
	NotFoundPath string `mapstructure:"not_found_path"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string       `mapstructure:"driver"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// SQLiteConfig represents the embedded SQLite store used for local runs
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig holds the deployment secrets for registration and tokens
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	InviteCode string        `mapstructure:"invite_code"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`
}

// CacheConfig controls the Redis link cache used by the redirect path
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	LinkTTL time.Duration `mapstructure:"link_ttl"`
}

// NotifyConfig selects how visit notifications fan out to live subscribers
type NotifyConfig struct {
	Backend string `mapstructure:"backend"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// Notification backends
const (
	NotifyLocal    = "local"
	NotifyRedis    = "redis"
	NotifyRocketMQ = "rocketmq"
)

// Database drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(cfg.Database.MySQL.DSN)
	cfg.Auth.JWTSecret = expandEnv(cfg.Auth.JWTSecret)
	cfg.Auth.InviteCode = expandEnv(cfg.Auth.InviteCode)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the service cannot run without
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Auth.InviteCode == "" {
		return errors.New("auth.invite_code is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}

	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}

	switch c.Notify.Backend {
	case NotifyLocal, NotifyRedis:
	case NotifyRocketMQ:
		if c.RocketMQ.NameServer == "" {
			return errors.New("rocketmq.nameserver is required for the rocketmq notify backend")
		}
	default:
		return fmt.Errorf("unsupported notify backend: %q", c.Notify.Backend)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.dashboard_url", "http://localhost:4200")
	v.SetDefault("server.not_found_path", "/404")
	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.sqlite.path", "accorcia.db")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.link_ttl", "10m")
	v.SetDefault("notify.backend", NotifyLocal)
	v.SetDefault("rocketmq.topic", "url_visits")
	v.SetDefault("rocketmq.group", "accorcia_live_group")
}

// expandEnv expands ${VAR} placeholders from the process environment
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
