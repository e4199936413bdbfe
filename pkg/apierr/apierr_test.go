package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesKind(t *testing.T) {
	base := New(KindConflict, "jobs.apply", "already applied")

	wrapped := Wrap(fmt.Errorf("mutate: %w", base), KindTransport, "cache.mutate")

	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsTransport(wrapped))
	assert.Equal(t, "jobs.apply", wrapped.Op)
}

func TestWrapFillsMissingOp(t *testing.T) {
	base := &Error{Kind: KindAuth, Message: "token expired"}

	wrapped := Wrap(base, KindTransport, "users.me")

	assert.Equal(t, "users.me", wrapped.Op)
	assert.True(t, IsAuth(wrapped))
}

func TestWrapPlainError(t *testing.T) {
	err := Wrap(errors.New("connection refused"), KindTransport, "posts.list")

	require.NotNil(t, err)
	assert.True(t, IsTransport(err))
	assert.Equal(t, "posts.list: connection refused", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, KindTransport, "posts.list"))
}

func TestPredicatesOnForeignError(t *testing.T) {
	err := errors.New("plain")
	assert.False(t, IsValidation(err))
	assert.False(t, IsAuth(err))
	assert.False(t, IsConflict(nil))
}
