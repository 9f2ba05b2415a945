package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "foodhub"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	DB       DBConfig
	Redis    RedisConfig
	Cart     CartConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FOODHUB_APP_ENV" default:"development"`
	Port         string `envconfig:"FOODHUB_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FOODHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FOODHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Storage backends for the persisted cart blob.
const (
	StorageBackendMemory   = "memory"
	StorageBackendFile     = "file"
	StorageBackendRedis    = "redis"
	StorageBackendDatabase = "database"
)

type StorageConfig struct {
	Backend string `envconfig:"FOODHUB_STORAGE_BACKEND" default:"file"`
	FileDir string `envconfig:"FOODHUB_STORAGE_FILE_DIR" default:"./data/carts"`
}

func (s StorageConfig) validate() error {
	switch s.Backend {
	case StorageBackendMemory, StorageBackendRedis, StorageBackendDatabase:
		return nil
	case StorageBackendFile:
		if strings.TrimSpace(s.FileDir) == "" {
			return fmt.Errorf("%s requires FOODHUB_STORAGE_FILE_DIR", s.Backend)
		}
		return nil
	}
	return fmt.Errorf("unknown storage backend %q", s.Backend)
}

type DBConfig struct {
	DSN    string `envconfig:"FOODHUB_DB_DSN"`
	Driver string `envconfig:"FOODHUB_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"FOODHUB_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"FOODHUB_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"FOODHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FOODHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FOODHUB_REDIS_URL"`
	Address      string        `envconfig:"FOODHUB_REDIS_ADDR"`
	Password     string        `envconfig:"FOODHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"FOODHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FOODHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FOODHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FOODHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FOODHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FOODHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	NotificationTTL time.Duration `envconfig:"FOODHUB_CART_NOTIFICATION_TTL" default:"3200ms"`
	BlobTTL         time.Duration `envconfig:"FOODHUB_CART_BLOB_TTL" default:"720h"`
}

type CheckoutConfig struct {
	ServiceFee string `envconfig:"FOODHUB_CHECKOUT_SERVICE_FEE" default:"4.50"`
	TaxRate    string `envconfig:"FOODHUB_CHECKOUT_TAX_RATE" default:"0.08"`
}
