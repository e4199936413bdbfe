package querycache

import (
	"context"

	"jobnet_client/pkg/apierr"
)

// Page is one server page of a cursor-paginated collection. An empty
// NextCursor marks the terminal page. Cursors are opaque and forwarded
// verbatim.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

type pagedState[T any] struct {
	pages []Page[T]
}

func (s *pagedState[T]) terminal() bool {
	if len(s.pages) == 0 {
		return false
	}
	return s.pages[len(s.pages)-1].NextCursor == ""
}

// Paged is an infinite-scroll collection bound to one cache key: an ordered
// sequence of pages flattened on read, in server order, without client-side
// de-duplication.
type Paged[T any] struct {
	cache *Cache
	key   Key
	fetch func(ctx context.Context, cursor string) (Page[T], error)
}

func NewPaged[T any](c *Cache, key Key, fetch func(ctx context.Context, cursor string) (Page[T], error)) *Paged[T] {
	p := &Paged[T]{cache: c, key: key, fetch: fetch}
	c.bindRefetch(key, func(ctx context.Context) error {
		return p.Refetch(ctx)
	})
	return p
}

func (p *Paged[T]) Key() Key { return p.key }

func (p *Paged[T]) state() (*pagedState[T], bool) {
	v, ok, _ := p.cache.peek(p.key)
	if !ok {
		return nil, false
	}
	return v.(*pagedState[T]), true
}

// Items returns the flattened item sequence: the concatenation of loaded
// pages in request order.
func (p *Paged[T]) Items() []T {
	st, ok := p.state()
	if !ok {
		return nil
	}
	p.cache.mu.Lock()
	defer p.cache.mu.Unlock()
	var out []T
	for _, page := range st.pages {
		out = append(out, page.Items...)
	}
	return out
}

// Loaded reports whether the first page has been fetched.
func (p *Paged[T]) Loaded() bool {
	_, ok, _ := p.cache.peek(p.key)
	return ok
}

// HasMore reports whether a further page is known to exist.
func (p *Paged[T]) HasMore() bool {
	st, ok := p.state()
	return ok && !st.terminal()
}

// Load fetches the first page unless it is already cached and fresh.
// Concurrent loads for the same key share one request.
func (p *Paged[T]) Load(ctx context.Context) error {
	_, ok, stale := p.cache.peek(p.key)
	if ok && !stale {
		return nil
	}
	return p.replace(ctx, false)
}

// Refetch re-issues the first-page fetch. On success page 1 is replaced and
// every subsequently loaded page is discarded: a backing data set beyond
// page 1 may no longer be consistent with the refreshed head, so pagination
// resets rather than merges.
func (p *Paged[T]) Refetch(ctx context.Context) error {
	return p.replace(ctx, true)
}

func (p *Paged[T]) replace(ctx context.Context, force bool) error {
	if force {
		p.cache.group.Forget(p.key.String())
	}
	_, err, _ := p.cache.group.Do(p.key.String(), func() (any, error) {
		seq := p.cache.issueSeq(p.key)
		page, err := p.fetch(ctx, "")
		if err != nil {
			return nil, err
		}
		p.cache.applyReplace(p.key, seq, &pagedState[T]{pages: []Page[T]{page}})
		return nil, nil
	})
	if err != nil {
		return apierr.Wrap(err, apierr.KindTransport, p.key.String())
	}
	return nil
}

// FetchNext loads the page after the current frontier. It is a no-op when
// the first page has not been loaded yet, when the collection is terminal,
// or while another page fetch is in flight (rapid scroll events collapse
// into one load).
func (p *Paged[T]) FetchNext(ctx context.Context) error {
	p.cache.mu.Lock()
	e := p.cache.entryLocked(p.key)
	if !e.hasValue {
		p.cache.mu.Unlock()
		return nil
	}
	st := e.value.(*pagedState[T])
	if st.terminal() || e.fetchingNext {
		p.cache.mu.Unlock()
		return nil
	}
	e.fetchingNext = true
	e.seq++
	base := e.applied // the generation this append extends
	cursor := st.pages[len(st.pages)-1].NextCursor
	p.cache.mu.Unlock()

	page, err := p.fetch(ctx, cursor)
	if err != nil {
		p.cache.update(p.key, func(e *entry) bool {
			e.fetchingNext = false
			return false
		})
		return apierr.Wrap(err, apierr.KindTransport, p.key.String())
	}

	p.cache.update(p.key, func(e *entry) bool {
		e.fetchingNext = false
		if e.applied != base {
			// A refetch replaced the collection while this page was in
			// flight; its frontier no longer matches ours.
			return false
		}
		cur := e.value.(*pagedState[T])
		cur.pages = append(cur.pages, page)
		return true
	})
	return nil
}

// Patch applies fn to every cached item in place, across all loaded pages.
// Subscribers are notified when fn changed at least one item. Used for
// optimistic updates located by entity identity.
func (p *Paged[T]) Patch(fn func(item *T) bool) bool {
	changed := false
	p.cache.update(p.key, func(e *entry) bool {
		if !e.hasValue {
			return false
		}
		st := e.value.(*pagedState[T])
		for pi := range st.pages {
			for ii := range st.pages[pi].Items {
				if fn(&st.pages[pi].Items[ii]) {
					changed = true
				}
			}
		}
		return changed
	})
	return changed
}

// Subscribe registers fn to run after every applied change for the key.
func (p *Paged[T]) Subscribe(fn func()) func() {
	return p.cache.subscribe(p.key, fn)
}
