package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	SMTP      SMTPConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port" envconfig:"SERVER_PORT"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds" envconfig:"SERVER_TIMEOUT_SECONDS"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" envconfig:"DB_HOST"`
	Port     int    `mapstructure:"port" envconfig:"DB_PORT"`
	User     string `mapstructure:"user" envconfig:"DB_USER"`
	Password string `mapstructure:"password" envconfig:"DB_PASSWORD"`
	Name     string `mapstructure:"name" envconfig:"DB_NAME"`
	SSLMode  string `mapstructure:"sslmode" envconfig:"DB_SSLMODE"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret" envconfig:"JWT_SECRET"`
	ExpiryMinutes int    `mapstructure:"expiry_minutes" envconfig:"JWT_EXPIRY_MINUTES"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" envconfig:"RATE_LIMIT_RPS"`
	Burst             int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`

	// RedisURL switches rate limiting to a shared fixed window
	// across instances. Empty keeps the in-process limiter.
	RedisURL    string `mapstructure:"redis_url" envconfig:"RATE_LIMIT_REDIS_URL"`
	RedisLimit  int    `mapstructure:"redis_limit" envconfig:"RATE_LIMIT_REDIS_LIMIT"`
	RedisWindow int    `mapstructure:"redis_window_seconds" envconfig:"RATE_LIMIT_REDIS_WINDOW_SECONDS"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host" envconfig:"SMTP_HOST"`
	Port     int    `mapstructure:"port" envconfig:"SMTP_PORT"`
	Username string `mapstructure:"username" envconfig:"SMTP_USERNAME"`
	Password string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From     string `mapstructure:"from" envconfig:"SMTP_FROM"`
}

type WorkerConfig struct {
	ReminderIntervalMinutes int `mapstructure:"reminder_interval_minutes" envconfig:"WORKER_REMINDER_INTERVAL_MINUTES"`
	ReminderLeadMinutes     int `mapstructure:"reminder_lead_minutes" envconfig:"WORKER_REMINDER_LEAD_MINUTES"`
	PurgeIntervalHours      int `mapstructure:"purge_interval_hours" envconfig:"WORKER_PURGE_INTERVAL_HOURS"`
	PurgeRetentionDays      int `mapstructure:"purge_retention_days" envconfig:"WORKER_PURGE_RETENTION_DAYS"`
}

// LoadConfig reads config.yml, then lets environment variables override it.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	return &config, nil
}
