package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type APIConfig interface {
	BaseURL() string
	Timeout() time.Duration
}

type StoreConfig interface {
	Backend() string // "keyring", "file" or "memory"
	FilePath() string
	Passphrase() string
}

type ClientConfig interface {
	PageLimit() int
	LogLevel() string
	LogFormat() string
}

type HTTPConfig interface {
	Address() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
