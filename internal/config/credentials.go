package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Sentinel errors for credential loading. Use errors.Is to tell a missing
// file apart from a malformed one.
var (
	ErrCredentialsFile  = errors.New("config: credentials file not readable")
	ErrCredentialsParse = errors.New("config: credentials file invalid")
)

// Credentials are the Dropbox app key and secret. Loaded once per run and
// never written back.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// credentialsFile mirrors the on-disk JSON. Pointer fields distinguish a
// missing key from an empty string in error messages.
type credentialsFile struct {
	ClientID     *string `json:"client_id"`
	ClientSecret *string `json:"client_secret"`
}

// LoadCredentials reads the credentials JSON file at path. Both client_id
// and client_secret are required non-empty strings. There is no default and
// no environment fallback.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCredentialsFile, path, err)
	}

	var raw credentialsFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCredentialsParse, path, err)
	}

	var errs []error

	if raw.ClientID == nil || *raw.ClientID == "" {
		errs = append(errs, errors.New("client_id is required"))
	}

	if raw.ClientSecret == nil || *raw.ClientSecret == "" {
		errs = append(errs, errors.New("client_secret is required"))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrCredentialsParse, path, errors.Join(errs...))
	}

	return &Credentials{
		ClientID:     *raw.ClientID,
		ClientSecret: *raw.ClientSecret,
	}, nil
}

// String hides the secret so credentials can be printed safely.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{ClientID: %s, ClientSecret: [redacted]}", c.ClientID)
}

// LogValue keeps the secret out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_id", c.ClientID),
		slog.String("client_secret", "[redacted]"),
	)
}
