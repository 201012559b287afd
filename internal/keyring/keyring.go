// Package keyring keeps provider API keys in the OS keyring.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Service is the keyring service name entries are stored under.
const Service = "tempo"

var (
	// ErrNotFound is returned when no key is stored for a provider.
	ErrNotFound = errors.New("api key not found in keyring")
	// ErrUnavailable is returned when the OS keyring cannot be reached.
	ErrUnavailable = errors.New("OS keyring is not available")
)

// Store reads and writes provider API keys.
type Store interface {
	Get(provider string) (string, error)
	Set(provider, key string) error
	Delete(provider string) error
}

// OSStore is a Store backed by the operating system keyring.
type OSStore struct{}

// NewOSStore returns the OS keyring store.
func NewOSStore() *OSStore {
	return &OSStore{}
}

func userFor(provider string) string {
	return provider + "-api-key"
}

// Get returns the key stored for provider, or ErrNotFound.
func (OSStore) Get(provider string) (string, error) {
	key, err := keyring.Get(Service, userFor(provider))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return key, nil
}

// Set stores key for provider, replacing any previous value.
func (OSStore) Set(provider, key string) error {
	if key == "" {
		return errors.New("api key cannot be empty")
	}
	if err := keyring.Set(Service, userFor(provider), key); err != nil {
		return fmt.Errorf("storing api key in keyring: %w", err)
	}
	return nil
}

// Delete removes the key stored for provider.
func (OSStore) Delete(provider string) error {
	if err := keyring.Delete(Service, userFor(provider)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting api key from keyring: %w", err)
	}
	return nil
}

// Lookup returns the stored key for provider, treating a missing entry or
// an unreachable keyring as "no key".
func Lookup(s Store, provider string) string {
	key, err := s.Get(provider)
	if err != nil {
		return ""
	}
	return key
}
