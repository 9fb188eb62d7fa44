package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "AUCTIONFLOW"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AUCTIONFLOW_APP_ENV" required:"true"`
	Port         string `envconfig:"AUCTIONFLOW_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AUCTIONFLOW_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AUCTIONFLOW_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"AUCTIONFLOW_DB_DSN"`

	Host     string `envconfig:"AUCTIONFLOW_DB_HOST"`
	Port     int    `envconfig:"AUCTIONFLOW_DB_PORT" default:"5432"`
	User     string `envconfig:"AUCTIONFLOW_DB_USER"`
	Password string `envconfig:"AUCTIONFLOW_DB_PASSWORD"`
	Name     string `envconfig:"AUCTIONFLOW_DB_NAME"`
	SSLMode  string `envconfig:"AUCTIONFLOW_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AUCTIONFLOW_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AUCTIONFLOW_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AUCTIONFLOW_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AUCTIONFLOW_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	if db.Host == "" {
		missing = append(missing, "AUCTIONFLOW_DB_HOST")
	}
	if db.User == "" {
		missing = append(missing, "AUCTIONFLOW_DB_USER")
	}
	if db.Name == "" {
		missing = append(missing, "AUCTIONFLOW_DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("database config incomplete: set AUCTIONFLOW_DB_DSN or %s", strings.Join(missing, ", "))
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	query := dsn.Query()
	query.Set("sslmode", db.SSLMode)
	dsn.RawQuery = query.Encode()

	db.DSN = dsn.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"AUCTIONFLOW_REDIS_URL"`
	Address      string        `envconfig:"AUCTIONFLOW_REDIS_ADDR"`
	Password     string        `envconfig:"AUCTIONFLOW_REDIS_PASSWORD"`
	DB           int           `envconfig:"AUCTIONFLOW_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AUCTIONFLOW_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AUCTIONFLOW_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AUCTIONFLOW_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AUCTIONFLOW_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AUCTIONFLOW_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AUCTIONFLOW_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AUCTIONFLOW_JWT_ISSUER" default:"auctionflow"`
	ExpirationMinutes int    `envconfig:"AUCTIONFLOW_JWT_EXPIRATION_MINUTES" default:"720"`
}

// Expiration returns the operator token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"AUCTIONFLOW_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"AUCTIONFLOW_AUTO_MIGRATE" default:"false"`
}
