package redis

import (
	"time"

	"github.com/petrichorlab/eightdays/internal/model"
)

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// RoomTTL is how long room keys live. It doubles as the reaper:
	// rooms expire out of Redis at the same point they go logically dead.
	RoomTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		RoomTTL:      model.RoomLifetime,
	}
}
