package repositories

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/myrjola/tutorials/internal/errors"
	"github.com/myrjola/tutorials/internal/models"
	"github.com/myrjola/tutorials/internal/sqlite"
)

type PhotoRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewPhotoRepository(db *sqlite.Database, logger *slog.Logger) *PhotoRepository {
	return &PhotoRepository{
		db:     db,
		logger: logger.With(slog.String("source", "PhotoRepository")),
	}
}

// Count returns the number of cached photos.
func (r *PhotoRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.ReadOnly.GetContext(ctx, &count, `SELECT COUNT(*) FROM photos`); err != nil {
		return 0, errors.Wrap(err, "count photos")
	}
	return count, nil
}

// List returns at most limit photos ordered by ID starting from offset.
func (r *PhotoRepository) List(ctx context.Context, offset, limit int) ([]models.Photo, error) {
	photos := []models.Photo{}
	stmt := `SELECT id, album_id, title, url, thumbnail_url
FROM photos
ORDER BY id
LIMIT ? OFFSET ?`
	if err := r.db.ReadOnly.SelectContext(ctx, &photos, stmt, limit, offset); err != nil {
		return nil, errors.Wrap(err, "select photos", slog.Int("offset", offset), slog.Int("limit", limit))
	}
	return photos, nil
}

// ReplaceAll swaps the cached photos for photos in a single transaction.
func (r *PhotoRepository) ReplaceAll(ctx context.Context, photos []models.Photo) error {
	var (
		tx  *sqlx.Tx
		err error
	)
	if tx, err = r.db.ReadWrite.BeginTxx(ctx, nil); err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM photos`); err != nil {
		return errors.Wrap(err, "delete photos")
	}

	var insert *sqlx.NamedStmt
	if insert, err = tx.PrepareNamedContext(ctx, `INSERT INTO photos (id, album_id, title, url, thumbnail_url)
VALUES (:id, :album_id, :title, :url, :thumbnail_url)`); err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer func() {
		if err = insert.Close(); err != nil {
			r.logger.LogAttrs(ctx, slog.LevelError, "could not close statement", errors.SlogError(err))
		}
	}()
	for _, p := range photos {
		if _, err = insert.ExecContext(ctx, p); err != nil {
			return errors.Wrap(err, "insert photo", slog.Int("id", p.ID))
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}
