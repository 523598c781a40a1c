// Package catalog serves the photo list behind the infinite-scroll grid.
//
// The upstream list is fetched once and kept in SQLite. Growing the visible window slices the cached list instead
// of paging the upstream API.
package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/myrjola/tutorials/internal/errors"
	"github.com/myrjola/tutorials/internal/models"
	"github.com/myrjola/tutorials/internal/pager"
	"golang.org/x/sync/singleflight"
)

// Upstream fetches the full photo list.
type Upstream interface {
	Photos(ctx context.Context) ([]models.Photo, error)
}

// Store persists the fetched photo list.
type Store interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]models.Photo, error)
	ReplaceAll(ctx context.Context, photos []models.Photo) error
}

type Catalog struct {
	upstream Upstream
	store    Store
	logger   *slog.Logger
	fills    singleflight.Group
	// filled is set after the first successful fill so that an empty upstream list isn't refetched on every visit.
	filled atomic.Bool
}

func New(upstream Upstream, store Store, logger *slog.Logger) *Catalog {
	return &Catalog{
		upstream: upstream,
		store:    store,
		logger:   logger,
		fills:    singleflight.Group{},
		filled:   atomic.Bool{},
	}
}

// Window returns the first visible photos after clamping visible with [pager.Clamp], together with the total
// number of photos. The cache is filled from upstream on first use.
func (c *Catalog) Window(ctx context.Context, visible int) ([]models.Photo, int, error) {
	total, err := c.ensureFilled(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ensure photo cache")
	}
	visible = pager.Clamp(visible, total)
	var photos []models.Photo
	if photos, err = c.store.List(ctx, 0, visible); err != nil {
		return nil, 0, errors.Wrap(err, "list photos", slog.Int("visible", visible))
	}
	return photos, total, nil
}

// Sync refreshes the cache from upstream and returns the number of cached photos.
func (c *Catalog) Sync(ctx context.Context) (int, error) {
	v, err, _ := c.fills.Do("sync", func() (any, error) {
		return c.fill(context.WithoutCancel(ctx))
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil //nolint:forcetypeassert // fill always returns int
}

func (c *Catalog) ensureFilled(ctx context.Context) (int, error) {
	total, err := c.store.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "count cached photos")
	}
	if total > 0 || c.filled.Load() {
		return total, nil
	}
	// Concurrent first visitors share a single upstream fetch. The count is repeated inside the flight so that a
	// visitor arriving just after a finished fill doesn't fetch again.
	//
	// The flight outlives the visitor who started it since the others wait for the same result. The upstream
	// client timeout bounds it.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := c.fills.Do("fill", func() (any, error) {
		count, countErr := c.store.Count(flightCtx)
		if countErr != nil {
			return 0, errors.Wrap(countErr, "recount cached photos")
		}
		if count > 0 || c.filled.Load() {
			return count, nil
		}
		return c.fill(flightCtx)
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil //nolint:forcetypeassert // the flight always returns int
}

func (c *Catalog) fill(ctx context.Context) (int, error) {
	start := time.Now()
	photos, err := c.upstream.Photos(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "fetch upstream photos")
	}
	if err = c.store.ReplaceAll(ctx, photos); err != nil {
		return 0, errors.Wrap(err, "store photos")
	}
	c.filled.Store(true)
	c.logger.LogAttrs(ctx, slog.LevelInfo, "filled photo cache",
		slog.Int("count", len(photos)), slog.Duration("duration", time.Since(start)))
	return len(photos), nil
}
