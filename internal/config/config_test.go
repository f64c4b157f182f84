package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("AUTH_HEADER", "")
	t.Setenv("JWT_EXPIRY_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.Store.Driver)
	assert.Equal(t, "x-api-key", cfg.JWT.Header)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiry())
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, 2*time.Hour, cfg.TokenExpiry())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{
		Store: StoreConfig{Driver: "sqlite"},
		JWT:   JWTConfig{Secret: "x", ExpiryHours: 1, Header: "x-api-key"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestLoadDatabaseConfig_InvalidPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := LoadDatabaseConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestLoadDatabaseConfig_Durations(t *testing.T) {
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	dbCfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, 5433, dbCfg.Port)
	assert.Equal(t, 250*time.Millisecond, dbCfg.RetryDelay)
	assert.Equal(t, 10*time.Second, dbCfg.ConnectTimeout)
}
