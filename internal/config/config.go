package config

import (
	"time"

	"github.com/maxviazov/talent-agency-service/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Redis    RedisConfig         `mapstructure:"redis"`
	Auth     AuthConfig          `mapstructure:"auth"`
	Upload   UploadConfig        `mapstructure:"upload"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	BaseURL         string        `mapstructure:"base_url" validate:"omitempty,url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	// AutoMigrate applies pending goose migrations on server start.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// PostgresConfig durations are in seconds, matching how ops write them in YAML.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=1"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0,ltefield=MaxConns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime" validate:"min=0"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time" validate:"min=0"`
	HealthCheckPeriod int    `mapstructure:"health_check_period" validate:"min=0"`
	// ConnectTimeout bounds the whole connect-with-retry loop at start-up.
	ConnectTimeout int `mapstructure:"connect_timeout" validate:"min=1"`
}

// RedisConfig is optional: with an empty Addr token revocation is disabled.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer     string        `mapstructure:"issuer" validate:"required"`
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
	CookieName string        `mapstructure:"cookie_name" validate:"required"`
	// SecureCookie sets the Secure flag; off only for local http development.
	SecureCookie bool `mapstructure:"secure_cookie"`
}

type UploadConfig struct {
	Dir          string   `mapstructure:"dir" validate:"required"`
	PublicPrefix string   `mapstructure:"public_prefix" validate:"required,startswith=/"`
	MaxFileSize  int64    `mapstructure:"max_file_size" validate:"gt=0"`
	MaxFiles     int      `mapstructure:"max_files" validate:"gt=0"`
	AllowedTypes []string `mapstructure:"allowed_types" validate:"required,min=1,dive,required"`
}
