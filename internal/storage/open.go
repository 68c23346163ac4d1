package storage

import (
	"context"
	"fmt"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "storefront:"

// Open builds the Store selected by cfg.StorageDriver. The returned close
// func releases any connection it opened.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }
	log := logger.FromCtx(ctx).With(zap.String("driver", cfg.StorageDriver))

	switch cfg.StorageDriver {
	case config.DriverMemory, "":
		log.Info("storage ready")
		return NewMemoryStore(), noop, nil

	case config.DriverFile:
		fs, err := NewFileStore(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info("storage ready", zap.String("dir", cfg.StorageDir))
		return fs, noop, nil

	case config.DriverPostgres:
		conn, err := db.NewDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("storage ready", zap.String("db", cfg.DBName))
		return NewPostgresStore(conn, ""), conn.Close, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		log.Info("storage ready", zap.String("addr", cfg.RedisAddr))
		return NewRedisStore(client, redisKeyPrefix), client.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
}
