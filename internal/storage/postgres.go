package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storefront/internal/logger"

	"go.uber.org/zap"
)

// PostgresStore keeps values in the storefront_kv table, one row per
// (namespace, key). Namespace separates independent sessions.
type PostgresStore struct {
	db        *sql.DB
	namespace string
}

func NewPostgresStore(db *sql.DB, namespace string) *PostgresStore {
	if namespace == "" {
		namespace = "default"
	}
	return &PostgresStore{db: db, namespace: namespace}
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT value
		FROM storefront_kv
		WHERE namespace = $1 AND key = $2
	`, s.namespace, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load storefront value",
			zap.String("namespace", s.namespace),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedLoad, key, err)
	}
	return value, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO storefront_kv (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, s.namespace, key, value)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to save storefront value",
			zap.String("namespace", s.namespace),
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s: %w", ErrFailedSave, key, err)
	}
	return nil
}
