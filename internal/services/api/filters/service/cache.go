package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"gsa/internal/platform/metrics"
	"gsa/internal/services/api/filters/domain"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL bounds how long a default filter lookup is trusted
const DefaultCacheTTL = 5 * time.Minute

// loadTimeout bounds a shared load, which runs detached from its callers
const loadTimeout = 5 * time.Second

// defaults is a read-through cache of default filters keyed by entity type.
// A cached nil means the type has no default. Every invalidation bumps a
// generation; a load only fills the cache when no invalidation happened
// while it ran
type defaults struct {
	c     *gocache.Cache
	group singleflight.Group

	mu  sync.Mutex
	gen map[string]uint64
	all uint64
}

func newDefaults(ttl time.Duration) *defaults {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &defaults{c: gocache.New(ttl, 2*ttl), gen: map[string]uint64{}}
}

// stamp is the generation of entityType; callers hold mu
func (d *defaults) stamp(entityType string) string {
	return strconv.FormatUint(d.all, 10) + "." + strconv.FormatUint(d.gen[entityType], 10)
}

// get returns the cached entry or loads it once for concurrent callers. A
// caller giving up does not cancel the load for the others
func (d *defaults) get(ctx context.Context, entityType string, load func(context.Context) (*domain.SavedFilter, error)) (*domain.SavedFilter, error) {
	if v, ok := d.c.Get(entityType); ok {
		metrics.DefaultFilterCacheTotal.WithLabelValues("hit").Inc()
		return v.(*domain.SavedFilter), nil
	}
	metrics.DefaultFilterCacheTotal.WithLabelValues("miss").Inc()

	d.mu.Lock()
	stamp := d.stamp(entityType)
	d.mu.Unlock()

	ch := d.group.DoChan(entityType+"@"+stamp, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		sf, err := load(lctx)
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		defer d.mu.Unlock()
		if d.stamp(entityType) == stamp {
			d.c.SetDefault(entityType, sf)
		}
		return sf, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*domain.SavedFilter), nil
	}
}

// forget drops one entity type
func (d *defaults) forget(entityType string) {
	d.mu.Lock()
	d.gen[entityType]++
	d.c.Delete(entityType)
	d.mu.Unlock()
	metrics.DefaultFilterCacheTotal.WithLabelValues("invalidate").Inc()
}

// forgetAll drops every entry, used when a filter that may back several defaults changes
func (d *defaults) forgetAll() {
	d.mu.Lock()
	d.all++
	d.c.Flush()
	d.mu.Unlock()
	metrics.DefaultFilterCacheTotal.WithLabelValues("invalidate").Inc()
}
