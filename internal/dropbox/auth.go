package dropbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenURL is Dropbox's OAuth2 token endpoint.
const DefaultTokenURL = "https://api.dropbox.com/oauth2/token"

// ExchangeToken performs one OAuth2 client-credentials grant against
// tokenURL and returns the access token. client_id, client_secret and
// grant_type travel in a form-urlencoded request body.
//
// The token is not refreshed or persisted; it lives for one run. Non-2xx
// replies surface as *APIError, a reply without access_token wraps
// ErrUnexpectedResponse.
func ExchangeToken(
	ctx context.Context,
	httpClient *http.Client,
	tokenURL, clientID, clientSecret string,
	logger *slog.Logger,
) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, withJSONTokenReplies(httpClient))

	logger.Debug("requesting access token", slog.String("token_url", tokenURL))

	tok, err := cfg.Token(ctx)
	if err != nil {
		return "", classifyTokenError(ctx, err)
	}

	logger.Info("access token obtained",
		slog.String("token_type", tok.Type()),
		slog.Time("expiry", tok.Expiry),
	)

	return tok.AccessToken, nil
}

// classifyTokenError maps oauth2 library errors onto this package's error
// taxonomy: HTTP failures become *APIError, transport failures stay as-is,
// anything else means the body could not be turned into a token.
func classifyTokenError(ctx context.Context, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		// A 2xx reply carrying an "error" field.
		if code := retrieveErr.Response.StatusCode; code >= http.StatusOK && code < http.StatusMultipleChoices {
			return fmt.Errorf("%w: token endpoint: %w", ErrUnexpectedResponse, err)
		}

		return newAPIError(
			retrieveErr.Response.StatusCode,
			retrieveErr.Response.Header.Get(requestIDHeader),
			retrieveErr.Body,
		)
	}

	if ctx.Err() != nil {
		return fmt.Errorf("dropbox: token request canceled: %w", ctx.Err())
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("dropbox: token request: %w", err)
	}

	return fmt.Errorf("%w: token endpoint: %w", ErrUnexpectedResponse, err)
}

// maxTokenReply bounds how much of a token reply is buffered, matching the
// limit the oauth2 package applies when it reads the body.
const maxTokenReply = 1 << 20

// withJSONTokenReplies returns a copy of httpClient whose transport labels
// JSON token replies as application/json. The oauth2 package parses a
// text/plain body as a query string, so an unlabeled JSON body would lose
// its access_token.
func withJSONTokenReplies(httpClient *http.Client) *http.Client {
	var c http.Client
	if httpClient != nil {
		c = *httpClient
	}

	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	c.Transport = jsonTokenTransport{base: base}

	return &c
}

type jsonTokenTransport struct {
	base http.RoundTripper
}

func (t jsonTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, nil
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, _ := mime.ParseMediaType(ct); mt != "text/plain" {
			return resp, nil
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenReply))
	resp.Body.Close()

	if err != nil {
		return nil, fmt.Errorf("dropbox: reading token reply: %w", err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	// Form-encoded replies keep their label.
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		resp.Header.Set("Content-Type", "application/json")
	}

	return resp, nil
}

// StaticToken is a TokenSource that always returns the same bearer token.
// It carries the result of ExchangeToken for the rest of the run.
type StaticToken string

// Token returns the token, or ErrNoToken if it is empty.
func (t StaticToken) Token() (string, error) {
	if t == "" {
		return "", ErrNoToken
	}

	return string(t), nil
}
