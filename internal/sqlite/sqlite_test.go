package sqlite_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/myrjola/tutorials/internal/sqlite"
	"github.com/myrjola/tutorials/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "in-memory", url: ":memory:"},
		{name: "file", url: filepath.Join(t.TempDir(), "tutorials.sqlite")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			t.Cleanup(cancel)

			db, err := sqlite.NewDatabase(ctx, tt.url, testhelpers.NewLogger(io.Discard))
			require.NoError(t, err)
			t.Cleanup(func() {
				require.NoError(t, db.Close())
			})

			_, err = db.ReadWrite.ExecContext(ctx,
				`INSERT INTO photos (id, album_id, title, url, thumbnail_url) VALUES (1, 1, 't', 'u', 'th')`)
			require.NoError(t, err)

			var count int
			require.NoError(t, db.ReadOnly.GetContext(ctx, &count, `SELECT COUNT(*) FROM photos`))
			require.Equal(t, 1, count)

			_, err = db.ReadOnly.ExecContext(ctx, `DELETE FROM photos`)
			require.Error(t, err, "read-only connection must reject writes")
		})
	}
}

func TestNewDatabaseIsolatesInMemoryDatabases(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	logger := testhelpers.NewLogger(io.Discard)

	first, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	second, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, first.Close())
		require.NoError(t, second.Close())
	})

	_, err = first.ReadWrite.ExecContext(ctx,
		`INSERT INTO photos (id, album_id, title, url, thumbnail_url) VALUES (1, 1, 't', 'u', 'th')`)
	require.NoError(t, err)

	var count int
	require.NoError(t, second.ReadOnly.GetContext(ctx, &count, `SELECT COUNT(*) FROM photos`))
	require.Zero(t, count)
}

func TestNewDatabaseFailsWhenSchemaCannotBeApplied(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	url := filepath.Join(t.TempDir(), "missing", "tutorials.sqlite")
	db, err := sqlite.NewDatabase(ctx, url, testhelpers.NewLogger(io.Discard))
	require.ErrorContains(t, err, "apply schema")
	require.Nil(t, db)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	db, err = sqlite.NewDatabase(cancelled, ":memory:", testhelpers.NewLogger(io.Discard))
	require.ErrorContains(t, err, "apply schema")
	require.Nil(t, db)
}
