package querycache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threePages serves a fixed three-page collection keyed by cursor.
func threePages() func(ctx context.Context, cursor string) (Page[string], error) {
	return func(ctx context.Context, cursor string) (Page[string], error) {
		switch cursor {
		case "":
			return Page[string]{Items: []string{"a1", "a2"}, NextCursor: "c1"}, nil
		case "c1":
			return Page[string]{Items: []string{"b1"}, NextCursor: "c2"}, nil
		case "c2":
			return Page[string]{Items: []string{"z1", "z2"}}, nil
		default:
			return Page[string]{}, assert.AnError
		}
	}
}

func TestPagedFlattensInRequestOrder(t *testing.T) {
	ctx := context.Background()
	c := New()
	p := NewPaged(c, Key{Resource: "posts"}, threePages())

	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.FetchNext(ctx))
	require.NoError(t, p.FetchNext(ctx))

	assert.Equal(t, []string{"a1", "a2", "b1", "z1", "z2"}, p.Items())
	assert.False(t, p.HasMore())
}

func TestFetchNextBeforeLoadIsNoop(t *testing.T) {
	ctx := context.Background()
	c := New()
	var calls int32
	p := NewPaged(c, Key{Resource: "posts"}, func(ctx context.Context, cursor string) (Page[string], error) {
		atomic.AddInt32(&calls, 1)
		return Page[string]{}, nil
	})

	require.NoError(t, p.FetchNext(ctx))
	assert.Zero(t, atomic.LoadInt32(&calls))
	assert.False(t, p.Loaded())
}

func TestFetchNextAtTerminalIsNoop(t *testing.T) {
	ctx := context.Background()
	c := New()
	var calls int32
	p := NewPaged(c, Key{Resource: "posts"}, func(ctx context.Context, cursor string) (Page[string], error) {
		atomic.AddInt32(&calls, 1)
		return Page[string]{Items: []string{"only"}}, nil
	})

	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.FetchNext(ctx))
	require.NoError(t, p.FetchNext(ctx))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, []string{"only"}, p.Items())
}

func TestRapidFetchNextLoadsPageOnce(t *testing.T) {
	ctx := context.Background()
	c := New()
	var nextCalls int32
	release := make(chan struct{})
	p := NewPaged(c, Key{Resource: "posts"}, func(ctx context.Context, cursor string) (Page[string], error) {
		if cursor == "" {
			return Page[string]{Items: []string{"a"}, NextCursor: "c1"}, nil
		}
		atomic.AddInt32(&nextCalls, 1)
		<-release
		return Page[string]{Items: []string{"b"}}, nil
	})

	require.NoError(t, p.Load(ctx))

	done := make(chan error, 1)
	go func() { done <- p.FetchNext(ctx) }()
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&nextCalls) == 1
	}, time.Second, time.Millisecond)

	// A scroll event while the page is in flight must not issue a second load.
	require.NoError(t, p.FetchNext(ctx))
	assert.Equal(t, int32(1), atomic.LoadInt32(&nextCalls))

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"a", "b"}, p.Items())
}

func TestRefetchResetsPagination(t *testing.T) {
	ctx := context.Background()
	c := New()
	var generation int32
	p := NewPaged(c, Key{Resource: "posts"}, func(ctx context.Context, cursor string) (Page[string], error) {
		if atomic.LoadInt32(&generation) == 0 {
			return threePages()(ctx, cursor)
		}
		if cursor == "" {
			return Page[string]{Items: []string{"fresh1"}, NextCursor: "f1"}, nil
		}
		return Page[string]{Items: []string{"fresh2"}}, nil
	})

	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.FetchNext(ctx))
	require.Len(t, p.Items(), 3)

	atomic.StoreInt32(&generation, 1)
	require.NoError(t, p.Refetch(ctx))

	assert.Equal(t, []string{"fresh1"}, p.Items(), "refetch must discard pages beyond the first")
	assert.True(t, p.HasMore(), "frontier must reset to the new first page's cursor")

	require.NoError(t, p.FetchNext(ctx))
	assert.Equal(t, []string{"fresh1", "fresh2"}, p.Items())
}

func TestLatePageDiscardedAfterRefetch(t *testing.T) {
	ctx := context.Background()
	c := New()
	holdNext := make(chan struct{})
	p := NewPaged(c, Key{Resource: "posts"}, func(ctx context.Context, cursor string) (Page[string], error) {
		switch cursor {
		case "":
			return Page[string]{Items: []string{"head"}, NextCursor: "c1"}, nil
		case "c1":
			<-holdNext
			return Page[string]{Items: []string{"old-tail"}}, nil
		default:
			return Page[string]{}, assert.AnError
		}
	})

	require.NoError(t, p.Load(ctx))

	done := make(chan error, 1)
	go func() { done <- p.FetchNext(ctx) }()
	require.Eventually(t, func() bool {
		p.cache.mu.Lock()
		defer p.cache.mu.Unlock()
		return p.cache.entryLocked(p.key).fetchingNext
	}, time.Second, time.Millisecond)

	// The collection is replaced while the old page-2 request is in flight.
	require.NoError(t, p.Refetch(ctx))

	close(holdNext)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"head"}, p.Items(), "a page fetched against the old head must be dropped")
}

func TestPatchEditsItemsInPlace(t *testing.T) {
	ctx := context.Background()
	c := New()
	type post struct {
		ID        string
		LikeCount int
	}
	p := NewPaged(c, Key{Resource: "posts"}, func(ctx context.Context, cursor string) (Page[post], error) {
		if cursor == "" {
			return Page[post]{Items: []post{{ID: "p1", LikeCount: 5}}, NextCursor: "c1"}, nil
		}
		return Page[post]{Items: []post{{ID: "p2", LikeCount: 0}}}, nil
	})

	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.FetchNext(ctx))

	var notified int32
	cancel := p.Subscribe(func() { atomic.AddInt32(&notified, 1) })
	defer cancel()

	changed := p.Patch(func(item *post) bool {
		if item.ID == "p2" {
			item.LikeCount++
			return true
		}
		return false
	})

	assert.True(t, changed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&notified))
	items := p.Items()
	assert.Equal(t, 5, items[0].LikeCount)
	assert.Equal(t, 1, items[1].LikeCount)

	changed = p.Patch(func(item *post) bool { return false })
	assert.False(t, changed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&notified), "no-op patch must not notify")
}
