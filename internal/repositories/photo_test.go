package repositories_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/myrjola/tutorials/internal/models"
	"github.com/myrjola/tutorials/internal/repositories"
	"github.com/myrjola/tutorials/internal/sqlite"
	"github.com/myrjola/tutorials/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

// newTestDB creates a new in-memory database for testing purposes.
func newTestDB(t *testing.T) *sqlite.Database {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	db, err := sqlite.NewDatabase(ctx, ":memory:", testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() {
		cancel()
		require.NoError(t, db.Close())
	})
	return db
}

func testPhotos(n int) []models.Photo {
	photos := make([]models.Photo, n)
	for i := range photos {
		id := i + 1
		photos[i] = models.Photo{
			AlbumID:      id/50 + 1,
			ID:           id,
			Title:        fmt.Sprintf("photo %d", id),
			URL:          fmt.Sprintf("https://example.com/600/%d", id),
			ThumbnailURL: fmt.Sprintf("https://example.com/150/%d", id),
		}
	}
	return photos
}

func TestPhotoRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewPhotoRepository(newTestDB(t), testhelpers.NewLogger(io.Discard))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	empty, err := repo.List(ctx, 0, 50)
	require.NoError(t, err)
	require.Empty(t, empty)

	photos := testPhotos(120)
	require.NoError(t, repo.ReplaceAll(ctx, photos))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 120, count)

	page, err := repo.List(ctx, 0, 50)
	require.NoError(t, err)
	require.Equal(t, photos[:50], page)

	page, err = repo.List(ctx, 100, 50)
	require.NoError(t, err)
	require.Equal(t, photos[100:], page)

	// Replacing drops photos that are no longer upstream.
	require.NoError(t, repo.ReplaceAll(ctx, photos[:10]))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, count)
}
