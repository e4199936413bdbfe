package tokenstore

import (
	"context"
	"errors"
)

// Names under which the two credential secrets are persisted.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
)

var ErrPartialWrite = errors.New("tokenstore: partial write rolled back")

// Store persists the opaque access/refresh token pair. At-rest protection
// is the backend's concern. Save is all-or-nothing from the caller's view:
// on failure the backend removes anything it managed to write.
type Store interface {
	Access(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
	Save(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}
