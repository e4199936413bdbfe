package querycache

import (
	"context"

	"jobnet_client/pkg/apierr"
)

// Query is a point query bound to one cache key. All handles built for the
// same key on the same cache share one logical entry.
type Query[T any] struct {
	cache *Cache
	key   Key
	fetch func(ctx context.Context) (T, error)
}

// NewQuery binds key to fetch. The entry's revalidation hook is set so
// invalidation can refresh subscribed readers.
func NewQuery[T any](c *Cache, key Key, fetch func(ctx context.Context) (T, error)) *Query[T] {
	q := &Query[T]{cache: c, key: key, fetch: fetch}
	c.bindRefetch(key, func(ctx context.Context) error {
		return q.Refetch(ctx)
	})
	return q
}

func (q *Query[T]) Key() Key { return q.key }

// Value returns the current cached value without fetching.
func (q *Query[T]) Value() (T, bool) {
	v, ok, _ := q.cache.peek(q.key)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Get returns the cached value when fresh, otherwise fetches. Concurrent
// callers for the same key attach to the same in-flight request.
func (q *Query[T]) Get(ctx context.Context) (T, error) {
	v, ok, stale := q.cache.peek(q.key)
	if ok && !stale {
		return v.(T), nil
	}
	return q.doFetch(ctx, false)
}

// Refetch re-issues the fetch regardless of freshness. A result that loses
// the sequence race to a newer fetch is discarded.
func (q *Query[T]) Refetch(ctx context.Context) error {
	_, err := q.doFetch(ctx, true)
	return err
}

func (q *Query[T]) doFetch(ctx context.Context, force bool) (T, error) {
	if force {
		// Detach from any in-flight fetch so a genuinely new request goes
		// out; the sequence guard resolves whichever lands last.
		q.cache.group.Forget(q.key.String())
	}
	v, err, _ := q.cache.group.Do(q.key.String(), func() (any, error) {
		seq := q.cache.issueSeq(q.key)
		val, err := q.fetch(ctx)
		if err != nil {
			return nil, err
		}
		q.cache.applyReplace(q.key, seq, val)
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, apierr.Wrap(err, apierr.KindTransport, q.key.String())
	}
	return v.(T), nil
}

// Subscribe registers fn to run after every applied change for the key and
// returns a cancel func. Subscribed entries are revalidated immediately on
// invalidation.
func (q *Query[T]) Subscribe(fn func()) func() {
	return q.cache.subscribe(q.key, fn)
}
