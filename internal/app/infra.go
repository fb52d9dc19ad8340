package app

import (
	"context"
	"errors"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/config"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/db"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/kv"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/redis"
)

// Infra holds the connections behind the installation store. Only the
// ones the configured driver needs are opened.
type Infra struct {
	DB    *db.DB
	Redis *redis.Client
	Store kv.Backend
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}
	deps := kv.Dependencies{}

	switch cfg.StoreDriver {
	case config.StoreRedis:
		client, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		infra.Redis = client
		deps.Redis = client.Client
		logger.Info("redis ready", map[string]any{"addr": cfg.RedisAddr})

	case config.StorePostgres, config.StoreSQLite:
		handle, err := db.Open(ctx, cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		infra.DB = handle
		deps.DB = handle
		logger.Info("database ready", map[string]any{"driver": cfg.StoreDriver})
	}

	store, err := kv.New(kv.Config{
		Driver:      cfg.StoreDriver,
		Secret:      cfg.StoreSecret,
		RedisPrefix: cfg.RedisPrefix,
	}, deps)
	if err != nil {
		_ = infra.Close(ctx)
		return nil, err
	}
	infra.Store = store

	logger.Info("installation store ready", map[string]any{
		"driver": cfg.StoreDriver,
		"sealed": cfg.StoreSecret != "",
	})
	return infra, nil
}

// Close releases every open connection. A backend owns the connection it
// was built on, so raw handles are only closed when no backend exists.
func (i *Infra) Close(ctx context.Context) error {
	if i.Store != nil {
		return i.Store.Close(ctx)
	}

	var errs []error
	if i.DB != nil {
		errs = append(errs, i.DB.Close())
	}
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	return errors.Join(errs...)
}
