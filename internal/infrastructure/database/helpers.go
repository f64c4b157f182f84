package database

import (
	"fmt"
	"time"
)

// PoolStats là snapshot thống kê của pgx pool, trả về ở health endpoint
type PoolStats struct {
	AcquiredConns      int32         `json:"acquiredConns"`
	IdleConns          int32         `json:"idleConns"`
	TotalConns         int32         `json:"totalConns"`
	MaxConns           int32         `json:"maxConns"`
	EmptyAcquireCount  int64         `json:"emptyAcquireCount"`
	AvgAcquireDuration time.Duration `json:"avgAcquireDuration"`
}

// Stats trả về snapshot của connection pool
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns:      raw.AcquiredConns(),
		IdleConns:          raw.IdleConns(),
		TotalConns:         raw.TotalConns(),
		MaxConns:           raw.MaxConns(),
		EmptyAcquireCount:  raw.EmptyAcquireCount(),
		AvgAcquireDuration: calculateAvgDuration(raw.AcquireDuration(), raw.AcquireCount()),
	}, nil
}

func calculateAvgDuration(total time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}
