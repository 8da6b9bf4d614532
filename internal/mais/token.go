package mais

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	authorizePath = "/api/oauth/authorize"
	tokenPath     = "/api/oauth/token"
)

// Endpoint returns the OAuth2 endpoint pair for a MaIS deployment.
// MaIS expects client credentials in the request body rather than an
// HTTP Basic authorization header.
func Endpoint(baseURL string) oauth2.Endpoint {
	base := strings.TrimSuffix(baseURL, "/")
	return oauth2.Endpoint{
		AuthURL:   base + authorizePath,
		TokenURL:  base + tokenPath,
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// TokenProvider exchanges client credentials for bearer tokens.
type TokenProvider struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	HTTPClient   *http.Client
}

// Acquire performs a client-credentials exchange and returns a value
// ready for use as an Authorization header. Every call performs a
// fresh exchange; tokens are not cached across calls, so a token never
// outlives its validity between transport constructions.
func (p *TokenProvider) Acquire(ctx context.Context) (string, error) {
	endpoint := Endpoint(p.BaseURL)
	cfg := &clientcredentials.Config{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		TokenURL:     endpoint.TokenURL,
		AuthStyle:    endpoint.AuthStyle,
	}
	if p.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.HTTPClient)
	}
	tok, err := cfg.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	return "Bearer " + tok.AccessToken, nil
}
