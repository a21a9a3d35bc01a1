package config

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"time"
)

// supportedLanguages lists the console message catalogs that ship with the
// binary.
var supportedLanguages = map[string]bool{"en": true, "es": true}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validLogFormats = map[string]bool{"auto": true, "text": true, "json": true}

// Validate checks all configuration values and returns all errors found.
// It accumulates every error rather than stopping at the first, so users
// can fix all issues in one pass.
func Validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateRecipients(cfg.Recipients)...)
	errs = append(errs, validateEndpoints(&cfg.EndpointConfig)...)
	errs = append(errs, validateLogging(&cfg.LoggingConfig)...)

	if !supportedLanguages[cfg.Language] {
		errs = append(errs, fmt.Errorf("language: must be one of en, es; got %q", cfg.Language))
	}

	return errors.Join(errs...)
}

// ValidateResolved checks the fully merged config. Unlike Validate(), which
// checks raw config file values, this runs after env and CLI overrides have
// been applied, so recipients from those layers are checked here too.
func ValidateResolved(cfg *Config) error {
	var errs []error

	if cfg.CredentialsFile == "" {
		errs = append(errs, errors.New("credentials_file: must not be empty"))
	}

	errs = append(errs, validateRecipients(cfg.Recipients)...)

	return errors.Join(errs...)
}

// RequireRecipients reports an error when no recipients are configured.
// Only the share step needs recipients; listing works without them.
func (c *Config) RequireRecipients() error {
	if len(c.Recipients) == 0 {
		return fmt.Errorf("no recipients configured: set recipients in the config file, %s, or --recipient", EnvRecipients)
	}

	return nil
}

// RequestTimeoutDuration returns the parsed request_timeout. Zero means no
// timeout. Validate has already rejected unparseable values for file-loaded
// configs; defaults always parse.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0
	}

	return d
}

func validateRecipients(recipients []string) []error {
	var errs []error

	for _, r := range recipients {
		addr, err := mail.ParseAddress(r)
		if err != nil || addr.Address != r {
			errs = append(errs, fmt.Errorf("recipients: %q is not a bare email address", r))
		}
	}

	return errs
}

func validateEndpoints(e *EndpointConfig) []error {
	var errs []error

	if err := validateURL(e.TokenURL); err != nil {
		errs = append(errs, fmt.Errorf("token_url: %w", err))
	}

	if err := validateURL(e.APIURL); err != nil {
		errs = append(errs, fmt.Errorf("api_url: %w", err))
	}

	d, err := time.ParseDuration(e.RequestTimeout)
	if err != nil {
		errs = append(errs, fmt.Errorf("request_timeout: invalid duration %q: %w", e.RequestTimeout, err))
	} else if d < 0 {
		errs = append(errs, fmt.Errorf("request_timeout: must not be negative, got %s", d))
	}

	return errs
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}

	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL, got %q", raw)
	}

	return nil
}

func validateLogging(l *LoggingConfig) []error {
	var errs []error

	if !validLogLevels[l.LogLevel] {
		errs = append(errs, fmt.Errorf("log_level: must be one of debug, info, warn, error; got %q", l.LogLevel))
	}

	if !validLogFormats[l.LogFormat] {
		errs = append(errs, fmt.Errorf("log_format: must be one of auto, text, json; got %q", l.LogFormat))
	}

	return errs
}
