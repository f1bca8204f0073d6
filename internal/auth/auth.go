// Package auth resolves the user identity used to key cloud-persisted swipe
// sessions. It implements a simple interface with multiple providers - a
// credentials file written by the login flow, then environment variables.
// No identity means anonymous mode: the app runs locally and never calls the
// remote store.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoIdentity indicates no credentials were found by any provider. It is
// the expected condition for anonymous sessions, not a failure.
var ErrNoIdentity = errors.New("no identity configured")

// Credentials identify an authenticated user against the remote store.
type Credentials struct {
	UserID      string `json:"userId"`      // Opaque identity token keying the persisted session
	AccessToken string `json:"accessToken"` // Bearer token for the persistence backend
}

func (c Credentials) valid() bool {
	return c.UserID != "" && c.AccessToken != ""
}

// Provider defines the interface for obtaining credentials. Implementations
// may use different sources (files, environment variables, etc).
type Provider interface {
	GetCredentials() (Credentials, error)
}

// FileProvider reads credentials from a JSON file, by default
// <user config dir>/hackswipe/credentials.json.
type FileProvider struct {
	// Path overrides the default credentials location when non-empty.
	Path string
}

// GetCredentials reads and decodes the credentials file. A missing file
// yields ErrNoIdentity.
func (f *FileProvider) GetCredentials() (Credentials, error) {
	path := f.Path
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Credentials{}, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "hackswipe", "credentials.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, ErrNoIdentity
		}
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode credentials: %w", err)
	}
	if !creds.valid() {
		return Credentials{}, ErrNoIdentity
	}
	return creds, nil
}

// EnvProvider reads credentials from the HACKSWIPE_USER_ID and
// HACKSWIPE_ACCESS_TOKEN environment variables.
type EnvProvider struct{}

// GetCredentials returns ErrNoIdentity unless both variables are set.
func (e *EnvProvider) GetCredentials() (Credentials, error) {
	creds := Credentials{
		UserID:      os.Getenv("HACKSWIPE_USER_ID"),
		AccessToken: os.Getenv("HACKSWIPE_ACCESS_TOKEN"),
	}
	if !creds.valid() {
		return Credentials{}, ErrNoIdentity
	}
	return creds, nil
}

// GetCredentials attempts each provider in order: credentials file first,
// then environment variables. ErrNoIdentity from every provider means the
// session is anonymous.
func GetCredentials(credentialsPath string) (Credentials, error) {
	providers := []Provider{
		&FileProvider{Path: credentialsPath},
		&EnvProvider{},
	}

	for _, p := range providers {
		creds, err := p.GetCredentials()
		if err == nil {
			return creds, nil
		}
		if !errors.Is(err, ErrNoIdentity) {
			return Credentials{}, err
		}
	}
	return Credentials{}, ErrNoIdentity
}
