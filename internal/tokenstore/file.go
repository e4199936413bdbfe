package tokenstore

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	saltSize  = 32
	nonceSize = 24
	keySize   = 32
)

// FileStore keeps the token pair in a single encrypted file. The file is
// sealed with nacl/secretbox under a scrypt-derived key, and replaced
// atomically on every write, so a pair is either fully present or absent.
type FileStore struct {
	path       string
	passphrase []byte
}

func NewFileStore(path, passphrase string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("tokenstore: file path required")
	}
	if passphrase == "" {
		return nil, errors.New("tokenstore: passphrase required")
	}
	return &FileStore{path: path, passphrase: []byte(passphrase)}, nil
}

type tokenPair struct {
	Access  string `json:"accessToken"`
	Refresh string `json:"refreshToken"`
}

func (s *FileStore) deriveKey(salt []byte) (*[keySize]byte, error) {
	raw, err := scrypt.Key(s.passphrase, salt, 1<<15, 8, 1, keySize)
	if err != nil {
		return nil, fmt.Errorf("tokenstore: key derivation: %w", err)
	}
	var key [keySize]byte
	copy(key[:], raw)
	return &key, nil
}

func (s *FileStore) load() (*tokenPair, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &tokenPair{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tokenstore: read %s: %w", s.path, err)
	}
	if len(raw) < saltSize+nonceSize {
		return nil, errors.New("tokenstore: store file truncated")
	}

	key, err := s.deriveKey(raw[:saltSize])
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[saltSize:saltSize+nonceSize])

	plain, ok := secretbox.Open(nil, raw[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return nil, errors.New("tokenstore: store file corrupt or wrong passphrase")
	}

	var pair tokenPair
	if err := json.Unmarshal(plain, &pair); err != nil {
		return nil, fmt.Errorf("tokenstore: decode: %w", err)
	}
	return &pair, nil
}

func (s *FileStore) write(pair *tokenPair) error {
	plain, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("tokenstore: encode: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("tokenstore: salt: %w", err)
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("tokenstore: nonce: %w", err)
	}

	key, err := s.deriveKey(salt)
	if err != nil {
		return err
	}

	out := make([]byte, 0, saltSize+nonceSize+len(plain)+secretbox.Overhead)
	out = append(out, salt...)
	out = append(out, nonce[:]...)
	out = secretbox.Seal(out, plain, &nonce, key)

	// Write to a temp file in the same directory and rename, so readers
	// never observe a half-written pair.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tokens-*")
	if err != nil {
		return fmt.Errorf("tokenstore: temp file: %w", err)
	}
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("tokenstore: write: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("tokenstore: chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("tokenstore: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("tokenstore: rename: %w", err)
	}
	return nil
}

func (s *FileStore) Access(_ context.Context) (string, error) {
	pair, err := s.load()
	if err != nil {
		return "", err
	}
	return pair.Access, nil
}

func (s *FileStore) Refresh(_ context.Context) (string, error) {
	pair, err := s.load()
	if err != nil {
		return "", err
	}
	return pair.Refresh, nil
}

func (s *FileStore) Save(_ context.Context, access, refresh string) error {
	return s.write(&tokenPair{Access: access, Refresh: refresh})
}

func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tokenstore: clear: %w", err)
	}
	return nil
}
