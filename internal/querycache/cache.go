// Package querycache keeps server-derived state in a keyed, observable
// cache shared by every reader of a resource. It deduplicates concurrent
// fetches per key, guards against out-of-order responses with per-key
// sequence numbers, and applies mutation results through declared
// invalidation edges and optimistic patches.
package querycache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"jobnet_client/internal/logger"
)

// Key addresses one logical server-derived resource view, e.g.
// {"posts", ""} or {"comments", postID}.
type Key struct {
	Resource string
	Param    string
}

func (k Key) String() string {
	if k.Param == "" {
		return k.Resource
	}
	return k.Resource + ":" + k.Param
}

// Cache is the shared entry table. Entries are created on first access and
// live for the lifetime of the process; there is no eviction.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	group   singleflight.Group
}

type entry struct {
	value    any
	hasValue bool
	stale    bool

	// seq counts issued fetches for this key; applied records the sequence
	// of the last applied replace. A result whose sequence is not ahead of
	// applied is discarded as stale.
	seq     uint64
	applied uint64

	// fetchingNext suppresses duplicate page loads from rapid scroll events.
	fetchingNext bool

	nextSubID int
	subs      map[int]func()

	// refetch is bound by the typed handle so Invalidate can revalidate
	// subscribed entries without knowing their element type.
	refetch func(ctx context.Context) error
}

func New() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// entryLocked returns the entry for key, creating it if needed.
// Callers must hold c.mu.
func (c *Cache) entryLocked(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{subs: make(map[int]func())}
		c.entries[key] = e
	}
	return e
}

// issueSeq reserves the next fetch sequence number for key.
func (c *Cache) issueSeq(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entryLocked(key)
	e.seq++
	return e.seq
}

// update runs fn on the key's entry under the cache lock and notifies
// subscribers when fn reports a change. Notification happens outside the
// lock so subscribers may read the cache.
func (c *Cache) update(key Key, fn func(e *entry) bool) {
	c.mu.Lock()
	e := c.entryLocked(key)
	changed := fn(e)
	var subs []func()
	if changed {
		subs = make([]func(), 0, len(e.subs))
		for _, s := range e.subs {
			subs = append(subs, s)
		}
	}
	c.mu.Unlock()

	for _, s := range subs {
		s()
	}
}

// applyReplace installs value as the entry's state if no newer result has
// been applied since seq was issued. Reports whether the result was kept.
func (c *Cache) applyReplace(key Key, seq uint64, value any) bool {
	kept := false
	c.update(key, func(e *entry) bool {
		if seq <= e.applied {
			return false // a newer response already landed
		}
		e.value = value
		e.hasValue = true
		e.stale = false
		e.applied = seq
		kept = true
		return true
	})
	return kept
}

// peek returns the entry's current value without triggering a fetch.
func (c *Cache) peek(key Key) (value any, hasValue, stale bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entryLocked(key)
	return e.value, e.hasValue, e.stale
}

// subscribe registers a change callback for key and returns a cancel func.
func (c *Cache) subscribe(key Key, fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entryLocked(key)
	id := e.nextSubID
	e.nextSubID++
	e.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(e.subs, id)
	}
}

func (c *Cache) bindRefetch(key Key, refetch func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entryLocked(key).refetch = refetch
}

// Invalidate marks every key stale. Keys with active subscribers are
// revalidated immediately; the rest refetch on their next read. Revalidation
// failures are logged, not surfaced, since the triggering operation already
// succeeded.
func (c *Cache) Invalidate(ctx context.Context, keys ...Key) {
	for _, key := range keys {
		c.mu.Lock()
		e := c.entryLocked(key)
		e.stale = true
		refetch := e.refetch
		subscribed := len(e.subs) > 0
		c.mu.Unlock()

		if subscribed && refetch != nil {
			if err := refetch(ctx); err != nil {
				logger.Warn().
					Str("key", key.String()).
					Err(err).
					Msg("revalidation after invalidate failed")
			}
		}
	}
}
