package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tonimelisma/dropbox-share/internal/config"
	"github.com/tonimelisma/dropbox-share/internal/dropbox"
)

// Session holds the authenticated Dropbox client for one run. The access
// token inside it is never refreshed or saved.
type Session struct {
	Client *dropbox.Client
	Config *config.Config
}

// NewSession loads the app credentials named by cfg, exchanges them for an
// access token and returns a client bound to that token. Credential and
// token failures are returned as-is so callers can inspect them with
// errors.Is / errors.As.
func NewSession(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Session, error) {
	creds, err := config.LoadCredentials(cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	logger.Debug("credentials loaded",
		slog.String("path", cfg.CredentialsFile),
		slog.Any("credentials", creds),
	)

	httpClient := newHTTPClient(cfg.RequestTimeoutDuration())

	tok, err := dropbox.ExchangeToken(ctx, httpClient, cfg.TokenURL, creds.ClientID, creds.ClientSecret, logger)
	if err != nil {
		return nil, fmt.Errorf("obtaining access token: %w", err)
	}

	return &Session{
		Client: dropbox.NewClient(cfg.APIURL, httpClient, dropbox.StaticToken(tok), logger),
		Config: cfg,
	}, nil
}
