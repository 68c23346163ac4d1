// Package db opens the Postgres pool backing the postgres storage driver
// and the migration tool.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storefront/internal/config"
	"storefront/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// InitDB opens the pool and exits the process when it is unreachable.
func InitDB(cfg *config.Config) *sql.DB {
	conn, err := NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("database unavailable", zap.Error(err))
	}
	return conn
}

func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	return newDatabaseWithDriver(cfg, "postgres")
}

func newDatabaseWithDriver(cfg *config.Config, driverName string) (*sql.DB, error) {
	conn, err := sql.Open(driverName, buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.L().Info("database connection established",
		zap.String("host", cfg.DBHost),
		zap.String("name", cfg.DBName),
	)
	return conn, nil
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}
