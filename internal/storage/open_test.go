package storage

import (
	"context"
	"path/filepath"
	"testing"

	"storefront/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		s, closeFn, err := Open(ctx, &config.Config{StorageDriver: config.DriverMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, s)
		assert.NoError(t, closeFn())
	})

	t.Run("File", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "state")
		s, closeFn, err := Open(ctx, &config.Config{StorageDriver: config.DriverFile, StorageDir: dir})
		require.NoError(t, err)
		defer closeFn()

		fs, ok := s.(*FileStore)
		require.True(t, ok)
		assert.Equal(t, dir, fs.Dir)
		exerciseStore(t, s)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		s, _, err := Open(ctx, &config.Config{StorageDriver: "s3"})
		assert.ErrorIs(t, err, ErrUnknownDriver)
		assert.Nil(t, s)
	})
}
