package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort    string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout   time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"30s"`
	WriteTimeout  time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout   time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
	MaxUploadSize int64         `envconfig:"MAX_UPLOAD_SIZE" default:"10485760"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	DB        DBConfig
	Storage   StorageConfig
	Mail      MailConfig
	KeepAlive KeepAliveConfig

	// Logging configuration
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// DBConfig holds the database connection settings. DATABASE_URL wins over the
// discrete DB_* fields when set.
type DBConfig struct {
	URL               string        `envconfig:"DATABASE_URL"`
	Host              string        `envconfig:"DB_HOST" default:"localhost"`
	Port              int           `envconfig:"DB_PORT" default:"5432"`
	User              string        `envconfig:"DB_USER" default:"postgres"`
	Password          string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name              string        `envconfig:"DB_NAME" default:"content_site"`
	SSLMode           string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxConns          int32         `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns          int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime   time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime   time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
	HealthCheckPeriod time.Duration `envconfig:"DB_HEALTH_CHECK_PERIOD" default:"1m"`
	MigrationsPath    string        `envconfig:"MIGRATIONS_PATH" default:"./migrations"`
	MigrateOnStart    bool          `envconfig:"MIGRATE_ON_START" default:"true"`
}

// StorageConfig configures the S3-compatible object store used for images.
type StorageConfig struct {
	Endpoint  string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	Bucket    string `envconfig:"MINIO_BUCKET" default:"content-site"`
	Folder    string `envconfig:"MINIO_FOLDER" default:"uploads"`
	// PublicURL is the base URL that uploaded objects are served from.
	PublicURL string `envconfig:"MINIO_PUBLIC_URL"`
}

// MailConfig configures outbound SMTP delivery for contact notifications.
type MailConfig struct {
	Host      string `envconfig:"SMTP_HOST" default:"localhost"`
	Port      int    `envconfig:"SMTP_PORT" default:"587"`
	Username  string `envconfig:"SMTP_USERNAME"`
	Password  string `envconfig:"SMTP_PASSWORD"`
	From      string `envconfig:"SMTP_FROM"`
	Recipient string `envconfig:"CONTACT_RECIPIENT"`
}

// KeepAliveConfig configures the self-ping task. An empty URL disables it.
type KeepAliveConfig struct {
	URL      string        `envconfig:"KEEPALIVE_URL"`
	Interval time.Duration `envconfig:"KEEPALIVE_INTERVAL" default:"14m"`
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DB.URL == "" {
		if c.DB.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DB.User == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DB.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	}
	if c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.DB.MinConns > c.DB.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) cannot exceed DB_MAX_CONNS (%d)", c.DB.MinConns, c.DB.MaxConns)
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("MINIO_BUCKET is required")
	}
	if c.MaxUploadSize < 1 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	if c.KeepAlive.URL != "" && c.KeepAlive.Interval <= 0 {
		return fmt.Errorf("KEEPALIVE_INTERVAL must be positive")
	}
	return nil
}

// DSN returns the Postgres connection string.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// ObjectBaseURL returns the base URL uploaded objects are reachable under.
func (c StorageConfig) ObjectBaseURL() string {
	if c.PublicURL != "" {
		return strings.TrimRight(c.PublicURL, "/")
	}
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// CORSOrigins returns the trimmed, non-empty list of allowed origins.
func (c *Config) CORSOrigins() []string {
	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, origin := range c.CORSAllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
