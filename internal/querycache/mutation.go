package querycache

import (
	"context"

	"jobnet_client/pkg/apierr"
)

// MutationOptions declares how a mutation's result propagates through the
// cache. Invalidation edges are declared statically by the caller, never
// inferred.
type MutationOptions struct {
	// Invalidates lists every key whose cached value the mutation makes
	// stale on success.
	Invalidates []Key

	// Optimistic, when set, applies a local patch before the network call
	// and returns the rollback that undoes it.
	Optimistic func() (rollback func())
}

// Mutate executes action. An optimistic patch is applied first and rolled
// back if the action fails with anything but a conflict: on conflict the
// server most likely already holds the optimistically shown state, and the
// caller is expected to disable the triggering action. On success the
// declared keys are invalidated.
func (c *Cache) Mutate(ctx context.Context, op string, action func(ctx context.Context) error, opts MutationOptions) error {
	var rollback func()
	if opts.Optimistic != nil {
		rollback = opts.Optimistic()
	}

	if err := action(ctx); err != nil {
		if rollback != nil && !apierr.IsConflict(err) {
			rollback()
		}
		return apierr.Wrap(err, apierr.KindTransport, op)
	}

	c.Invalidate(ctx, opts.Invalidates...)
	return nil
}
