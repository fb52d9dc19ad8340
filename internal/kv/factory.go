package kv

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/db"
)

// Driver identifiers accepted by New.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects and tunes a backend.
type Config struct {
	Driver      string
	Secret      string
	RedisPrefix string
}

// Dependencies carries connections some drivers require.
type Dependencies struct {
	Redis *redis.Client
	DB    *db.DB
}

// New creates a backend based on the provided configuration.
func New(cfg Config, deps Dependencies) (Backend, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverMemory
	}

	var backend Backend
	switch driver {
	case DriverMemory:
		backend = NewMemory()
	case DriverRedis:
		if deps.Redis == nil {
			return nil, fmt.Errorf("redis driver requires a client")
		}
		backend = NewRedisBackend(deps.Redis, cfg.RedisPrefix)
	case DriverPostgres, DriverSQLite:
		if deps.DB == nil {
			return nil, fmt.Errorf("%s driver requires a database handle", driver)
		}
		backend = NewSQLBackend(deps.DB)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}

	if cfg.Secret != "" {
		backend = NewSealed(backend, cfg.Secret)
	}
	return backend, nil
}
