package querycache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobnet_client/pkg/apierr"
)

func TestMutateInvalidatesOnSuccess(t *testing.T) {
	ctx := context.Background()
	c := New()
	key := Key{Resource: "applications"}
	fetches := 0
	q := NewQuery(c, key, func(ctx context.Context) (int, error) {
		fetches++
		return fetches, nil
	})

	_, err := q.Get(ctx)
	require.NoError(t, err)

	err = c.Mutate(ctx, "jobs.apply", func(ctx context.Context) error { return nil },
		MutationOptions{Invalidates: []Key{key}})
	require.NoError(t, err)

	v, err := q.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "read after a successful mutation must refetch")
}

func TestMutateRollsBackOptimisticPatchOnFailure(t *testing.T) {
	ctx := context.Background()
	c := New()
	value := 5

	err := c.Mutate(ctx, "posts.like",
		func(ctx context.Context) error { return errors.New("boom") },
		MutationOptions{
			Optimistic: func() func() {
				value++
				return func() { value-- }
			},
		})

	require.Error(t, err)
	assert.True(t, apierr.IsTransport(err))
	assert.Equal(t, 5, value, "failed mutation must undo the optimistic patch")
}

func TestMutateKeepsOptimisticPatchOnConflict(t *testing.T) {
	ctx := context.Background()
	c := New()
	value := 5

	err := c.Mutate(ctx, "jobs.apply",
		func(ctx context.Context) error {
			return apierr.New(apierr.KindConflict, "jobs.apply", "already applied")
		},
		MutationOptions{
			Optimistic: func() func() {
				value++
				return func() { value-- }
			},
		})

	require.Error(t, err)
	assert.True(t, apierr.IsConflict(err), "conflict kind must survive the cache layer")
	assert.Equal(t, 6, value, "conflicts do not roll back")
}

func TestMutateSkipsInvalidationOnFailure(t *testing.T) {
	ctx := context.Background()
	c := New()
	key := Key{Resource: "posts"}
	fetches := 0
	q := NewQuery(c, key, func(ctx context.Context) (int, error) {
		fetches++
		return fetches, nil
	})
	_, err := q.Get(ctx)
	require.NoError(t, err)

	_ = c.Mutate(ctx, "posts.create",
		func(ctx context.Context) error { return errors.New("down") },
		MutationOptions{Invalidates: []Key{key}})

	v, err := q.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "failed mutation must leave the cache untouched")
}
