package config

import (
	"os"
	"strings"
)

// Environment variable names for overrides.
const (
	EnvConfig      = "DROPBOX_SHARE_CONFIG"
	EnvCredentials = "DROPBOX_SHARE_CREDENTIALS"
	EnvRecipients  = "DROPBOX_SHARE_RECIPIENTS"
)

// EnvOverrides holds values derived from environment variables.
type EnvOverrides struct {
	ConfigPath      string   // DROPBOX_SHARE_CONFIG: override config file path
	CredentialsFile string   // DROPBOX_SHARE_CREDENTIALS: credentials JSON path
	Recipients      []string // DROPBOX_SHARE_RECIPIENTS: comma-separated addresses
}

// ReadEnvOverrides reads environment variables and returns any overrides found.
// This does not modify the Config; Resolve applies the relevant fields.
func ReadEnvOverrides() EnvOverrides {
	return EnvOverrides{
		ConfigPath:      os.Getenv(EnvConfig),
		CredentialsFile: os.Getenv(EnvCredentials),
		Recipients:      splitList(os.Getenv(EnvRecipients)),
	}
}

// splitList splits a comma-separated list, trimming whitespace and dropping
// empty elements. Returns nil for an empty input.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string

	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
