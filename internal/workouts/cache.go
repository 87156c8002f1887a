package workouts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// CatalogCacheExpireSeconds is how long a catalog read is served from memory.
const CatalogCacheExpireSeconds = 60

type catalogSource interface {
	List(ctx context.Context, limit int) ([]Workout, error)
	Get(ctx context.Context, id string) (*Workout, error)
}

// CachedRepo keeps the JSON encoded catalog reads in a freecache.Cache.
// Not found results are not cached.
type CachedRepo struct {
	source catalogSource
	cache  *freecache.Cache
}

func NewCachedRepo(source catalogSource, cacheSizeMB int) *CachedRepo {
	megabyte := 1024 * 1024
	return &CachedRepo{
		source: source,
		cache:  freecache.NewCache(cacheSizeMB * megabyte),
	}
}

func (c *CachedRepo) List(ctx context.Context, limit int) (_ []Workout, err error) {
	ctx, span := tracing.StartSpan(ctx, "cache.workouts.list")
	defer tracing.EndSpan(span, &err)

	cacheKey := []byte(fmt.Sprintf("list::%d", limit))
	var cached []Workout
	if c.lookup(cacheKey, &cached) {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	workouts, err := c.source.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	c.store(cacheKey, workouts)

	return workouts, nil
}

func (c *CachedRepo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.StartSpan(ctx, "cache.workouts.get")
	defer tracing.EndSpan(span, &err)

	cacheKey := []byte("workout::" + id)
	cached := &Workout{}
	if c.lookup(cacheKey, cached) {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	workout, err := c.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(cacheKey, workout)

	return workout, nil
}

func (c *CachedRepo) lookup(key []byte, dest any) bool {
	cachedBytes, err := c.cache.Get(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cachedBytes, dest); err != nil {
		log.Errorf("unmarshal cached catalog entry %s: %s", key, err)
		c.cache.Del(key)
		return false
	}
	return true
}

func (c *CachedRepo) store(key []byte, v any) {
	valueBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal catalog entry %s for cache: %s", key, err)
		return
	}
	if err := c.cache.Set(key, valueBytes, CatalogCacheExpireSeconds); err != nil {
		log.Warnf("set catalog cache %s: %s", key, err)
	}
}

// Clear drops every cached catalog read, the seed command calls it after
// writing new workouts.
func (c *CachedRepo) Clear() {
	c.cache.Clear()
}
