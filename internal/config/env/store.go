package env

import (
	"os"

	"jobnet_client/internal/config"
)

const (
	storeBackendEnvName    = "TOKEN_STORE_BACKEND"
	storeFilePathEnvName   = "TOKEN_STORE_FILE"
	storePassphraseEnvName = "TOKEN_STORE_PASSPHRASE"
)

type storeConfig struct {
	backend    string
	filePath   string
	passphrase string
}

func NewStoreConfig() (config.StoreConfig, error) {
	backend := os.Getenv(storeBackendEnvName)
	if len(backend) == 0 {
		backend = "keyring"
	}

	return &storeConfig{
		backend:    backend,
		filePath:   os.Getenv(storeFilePathEnvName),
		passphrase: os.Getenv(storePassphraseEnvName),
	}, nil
}

func (cfg *storeConfig) Backend() string {
	return cfg.backend
}

func (cfg *storeConfig) FilePath() string {
	return cfg.filePath
}

func (cfg *storeConfig) Passphrase() string {
	return cfg.passphrase
}
