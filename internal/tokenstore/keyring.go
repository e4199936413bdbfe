package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps both tokens in the platform keychain
// (Keychain on macOS, Secret Service on Linux, Credential Manager on Windows).
type KeyringStore struct {
	service string
}

func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = "jobnet_client"
	}
	return &KeyringStore{service: service}
}

func (s *KeyringStore) get(key string) (string, error) {
	val, err := keyring.Get(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: keyring get %s: %w", key, err)
	}
	return val, nil
}

func (s *KeyringStore) Access(_ context.Context) (string, error) {
	return s.get(AccessTokenKey)
}

func (s *KeyringStore) Refresh(_ context.Context) (string, error) {
	return s.get(RefreshTokenKey)
}

func (s *KeyringStore) Save(_ context.Context, access, refresh string) error {
	if err := keyring.Set(s.service, AccessTokenKey, access); err != nil {
		return fmt.Errorf("tokenstore: keyring set access: %w", err)
	}
	if err := keyring.Set(s.service, RefreshTokenKey, refresh); err != nil {
		// Roll the first write back so a reader never sees half a pair.
		_ = keyring.Delete(s.service, AccessTokenKey)
		return fmt.Errorf("%w: keyring set refresh: %v", ErrPartialWrite, err)
	}
	return nil
}

func (s *KeyringStore) Clear(_ context.Context) error {
	var firstErr error
	for _, key := range []string{AccessTokenKey, RefreshTokenKey} {
		err := keyring.Delete(s.service, key)
		if err != nil && !errors.Is(err, keyring.ErrNotFound) && firstErr == nil {
			firstErr = fmt.Errorf("tokenstore: keyring delete %s: %w", key, err)
		}
	}
	return firstErr
}
