package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-contacts-book/models"
)

// clientConfig is read from the environment only; command flags select the
// operation, not the connection.
type clientConfig struct {
	// ServerAddress is the contacts server, "host:port" or a full URL.
	ServerAddress string `env:"CONTACTS_SERVER_ADDRESS" envDefault:"localhost:8000"`

	// RequestTimeout bounds every request.
	RequestTimeout time.Duration `env:"CONTACTS_REQUEST_TIMEOUT" envDefault:"10s"`

	// TokenFile keeps the token pair between invocations. Defaults to
	// .contacts-book/tokens.json in the user's home directory.
	TokenFile string `env:"CONTACTS_TOKEN_FILE"`
}

func loadClientConfig() (clientConfig, error) {
	var cfg clientConfig
	if err := env.Parse(&cfg); err != nil {
		return clientConfig{}, fmt.Errorf("error parsing client env: %w", err)
	}

	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return clientConfig{}, fmt.Errorf("error resolving home directory: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, ".contacts-book", "tokens.json")
	}

	return cfg, nil
}

// tokenStore persists the token pair as JSON with owner-only permissions.
type tokenStore struct {
	path string
}

func (s tokenStore) load() (models.TokenPair, error) {
	var pair models.TokenPair

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return pair, nil
	}
	if err != nil {
		return pair, fmt.Errorf("error reading token file: %w", err)
	}

	if err = json.Unmarshal(data, &pair); err != nil {
		return pair, fmt.Errorf("error decoding token file: %w", err)
	}
	return pair, nil
}

func (s tokenStore) save(pair models.TokenPair) error {
	if pair.AccessToken == "" && pair.RefreshToken == "" {
		err := os.Remove(s.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error removing token file: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating token directory: %w", err)
	}

	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("error encoding tokens: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}
	return nil
}
