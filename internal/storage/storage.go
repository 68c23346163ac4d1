// Package storage provides the key-value byte store the storefront mirrors
// its state into.
package storage

import (
	"context"
	"errors"
)

var (
	ErrEmptyKey      = errors.New("storage key is empty")
	ErrFailedLoad    = errors.New("failed to load value")
	ErrFailedSave    = errors.New("failed to save value")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Store loads and saves raw values by key. Load returns (nil, nil) when
// the key is absent.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
