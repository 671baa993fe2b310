package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/sqlite"
	"github.com/fwojciec/msdocs/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens an in-memory database with the schema created.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

// testCodec returns a real zstd codec.
func testCodec(t *testing.T) msdocs.Codec {
	t.Helper()
	codec, err := zstd.NewCodec()
	require.NoError(t, err)
	return codec
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var entryCount int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&entryCount))

		var metaCount int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM meta").Scan(&metaCount))
	})

	t.Run("read-only open fails with ENOTFOUND for a missing artifact", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewReadOnlyDB(filepath.Join(t.TempDir(), "missing.db"))
		err := db.Open()
		require.Error(t, err)
		assert.Equal(t, msdocs.ENOTFOUND, msdocs.ErrorCode(err))
	})

	t.Run("read-only open succeeds on a built artifact", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docs.db")
		ctx := context.Background()
		codec := testCodec(t)

		builder := sqlite.NewDB(path)
		require.NoError(t, builder.Open())
		svc := sqlite.NewEntryService(builder, codec)
		require.NoError(t, svc.CreateEntry(ctx, &msdocs.Entry{Name: "CreateFileW", Description: "docs"}))
		require.NoError(t, builder.Close())

		reader := sqlite.NewReadOnlyDB(path)
		require.NoError(t, reader.Open())
		defer reader.Close()

		entry, err := sqlite.NewEntryService(reader, codec).FindEntryByName(ctx, "CreateFileW")
		require.NoError(t, err)
		assert.Equal(t, "docs", entry.Description)
	})
}
