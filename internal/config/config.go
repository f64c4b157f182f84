package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App   AppConfig
	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StoreConfig chọn document store backend
type StoreConfig struct {
	Driver string // mongo | postgres
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
	TTL      time.Duration
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
	Header      string // header mang token, mặc định x-api-key
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Blog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "blogging"),
			ConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			MaxRetries:     getEnvInt("MONGO_MAX_RETRIES", 5),
			RetryDelay:     getEnvDuration("MONGO_RETRY_DELAY", time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret:      os.Getenv("JWT_SECRET"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
			Header:      getEnv("AUTH_HEADER", "x-api-key"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	// Secret không bao giờ hard-code, kể cả môi trường development
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.JWT.ExpiryHours <= 0 {
		return errors.New("JWT_EXPIRY_HOURS must be positive")
	}
	if strings.TrimSpace(c.JWT.Header) == "" {
		return errors.New("AUTH_HEADER must not be empty")
	}

	switch c.Store.Driver {
	case StoreMongo:
		if c.Mongo.URI == "" {
			return errors.New("MONGO_URI must be set when STORE_DRIVER=mongo")
		}
	case StorePostgres:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want %s or %s)", c.Store.Driver, StoreMongo, StorePostgres)
	}

	return nil
}

// TokenExpiry trả về thời hạn token dạng time.Duration
func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.JWT.ExpiryHours) * time.Hour
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
