package config

import (
	"fmt"
	"strconv"
	"time"

	"blog-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig đọc config PostgreSQL từ environment variables
// Chỉ được gọi khi STORE_DRIVER=postgres
func LoadDatabaseConfig() (*database.DBConfig, error) {
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNECTIONS: %w", err)
	}

	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNECTIONS: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	maxConnLifetime, err := time.ParseDuration(getEnv("DB_MAX_CONN_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFETIME: %w", err)
	}

	maxConnIdleTime, err := time.ParseDuration(getEnv("DB_MAX_CONN_IDLE_TIME", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_IDLE_TIME: %w", err)
	}

	healthCheckPeriod, err := time.ParseDuration(getEnv("DB_HEALTH_CHECK_PERIOD", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_HEALTH_CHECK_PERIOD: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("DB_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	return &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              port,
		Username:          getEnv("DB_USER", "blog"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "blogging"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   maxConnLifetime,
		MaxConnIdleTime:   maxConnIdleTime,
		HealthCheckPeriod: healthCheckPeriod,
		MaxRetries:        maxRetries,
		RetryDelay:        retryDelay,
		ConnectTimeout:    connectTimeout,
	}, nil
}

// LoadMongoConfig chuyển MongoConfig sang kiểu của infrastructure
func (c *Config) LoadMongoConfig() *database.MongoConfig {
	return &database.MongoConfig{
		URI:            c.Mongo.URI,
		Database:       c.Mongo.Database,
		ConnectTimeout: c.Mongo.ConnectTimeout,
		MaxRetries:     c.Mongo.MaxRetries,
		RetryDelay:     c.Mongo.RetryDelay,
	}
}
