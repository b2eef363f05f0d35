package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-api/pkg/cache"
	"bookstore-api/pkg/metrics"
)

// cachedRepository is a cache-aside decorator. FindByID and Exists read
// through the cache; Update and Delete drop the entry after every attempt.
// Cache failures are logged and never fail the call.
type cachedRepository[T any] struct {
	Repository[T]

	cache  cache.Cache
	prefix string
	ttl    time.Duration
	id     func(*T) int64

	dependents func(ctx context.Context, entity *T) ([]string, error)
}

// CachedOption configures the cache-aside decorator.
type CachedOption[T any] func(*cachedRepository[T])

// WithDependents makes Delete also drop the keys returned by keys. It is
// called before the delete runs, while rows referencing entity still do.
func WithDependents[T any](keys func(ctx context.Context, entity *T) ([]string, error)) CachedOption[T] {
	return func(r *cachedRepository[T]) {
		r.dependents = keys
	}
}

// NewCached wraps inner with a cache-aside layer keyed by prefix + id.
func NewCached[T any](inner Repository[T], c cache.Cache, prefix string, ttl time.Duration, id func(*T) int64, opts ...CachedOption[T]) Repository[T] {
	r := &cachedRepository[T]{
		Repository: inner,
		cache:      c,
		prefix:     prefix,
		ttl:        ttl,
		id:         id,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *cachedRepository[T]) key(id int64) string {
	return r.prefix + strconv.FormatInt(id, 10)
}

func (r *cachedRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	key := r.key(id)

	var e T
	hit, err := r.cache.Get(ctx, key, &e)
	switch {
	case err != nil:
		metrics.RecordCacheLookup("error")
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	case hit:
		metrics.RecordCacheLookup("hit")
		return &e, nil
	default:
		metrics.RecordCacheLookup("miss")
	}

	found, err := r.Repository.FindByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}

	if err := r.cache.Set(ctx, key, found, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return found, nil
}

func (r *cachedRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	hit, err := r.cache.Exists(ctx, r.key(id))
	if err != nil {
		log.Warn().Err(err).Str("key", r.key(id)).Msg("cache exists check failed")
	} else if hit {
		return true, nil
	}
	return r.Repository.Exists(ctx, id)
}

func (r *cachedRepository[T]) Update(ctx context.Context, entity *T) (bool, error) {
	defer r.invalidate(ctx, r.key(r.id(entity)))
	return r.Repository.Update(ctx, entity)
}

func (r *cachedRepository[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	keys := []string{r.key(r.id(entity))}
	if r.dependents != nil {
		extra, err := r.dependents(ctx, entity)
		if err != nil {
			log.Warn().Err(err).Str("key", keys[0]).Msg("cache dependents lookup failed")
		}
		keys = append(keys, extra...)
	}

	defer r.invalidate(ctx, keys...)
	return r.Repository.Delete(ctx, entity)
}

func (r *cachedRepository[T]) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
