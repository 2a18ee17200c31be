// Package auth acquires and persists the OAuth session used to call the
// Microsoft Graph mail API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/skoval/mailscan/internal/config"
)

// Provider defines the authentication surface the rest of mailscan depends on
type Provider interface {
	// IsAuthenticated checks if a usable session exists
	IsAuthenticated() bool

	// Authenticate performs the interactive OAuth flow and saves the token
	Authenticate(ctx context.Context) error

	// Client returns an HTTP client that attaches and refreshes the token
	Client(ctx context.Context) (*http.Client, error)
}

// Interactive is the production Provider backed by the Microsoft identity
// platform's authorization-code flow with a localhost callback.
type Interactive struct {
	cfg config.AuthConfig
}

// New creates an interactive provider for the configured tenant
func New(cfg config.AuthConfig) *Interactive {
	return &Interactive{cfg: cfg}
}

func (p *Interactive) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:    p.cfg.ClientID,
		Endpoint:    microsoft.AzureADEndpoint(p.cfg.TenantID),
		RedirectURL: fmt.Sprintf("http://localhost:%d/callback", p.cfg.CallbackPort),
		Scopes:      p.cfg.Scopes,
	}
}

// IsAuthenticated checks if a saved token exists and is still usable
func (p *Interactive) IsAuthenticated() bool {
	token, err := loadToken(p.cfg.TokenPath)
	if err != nil {
		return false
	}
	return token.Valid() || token.RefreshToken != ""
}

// Authenticate performs the browser OAuth flow
func (p *Interactive) Authenticate(ctx context.Context) error {
	if p.cfg.ClientID == "" {
		return errors.New("auth.client_id is not set; register an application at https://portal.azure.com and put its client id in the config")
	}

	token, err := getTokenFromWeb(ctx, p.oauthConfig(), p.cfg.CallbackPort)
	if err != nil {
		return err
	}

	if err := saveToken(p.cfg.TokenPath, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// Client returns an authenticated HTTP client for the saved session
func (p *Interactive) Client(ctx context.Context) (*http.Client, error) {
	token, err := loadToken(p.cfg.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("no saved session (run 'mailscan login'): %w", err)
	}

	// Token source will auto-refresh expired tokens
	source := p.oauthConfig().TokenSource(ctx, token)

	// Save refreshed token if it changed
	fresh, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if fresh.AccessToken != token.AccessToken {
		_ = saveToken(p.cfg.TokenPath, fresh)
	}

	return oauth2.NewClient(ctx, source), nil
}

// Static is a pre-authenticated Provider wrapping a fixed HTTP client.
// Deterministic stand-in for the interactive flow in tests.
type Static struct {
	HTTPClient *http.Client
}

// IsAuthenticated always reports an active session
func (s *Static) IsAuthenticated() bool { return true }

// Authenticate is a no-op
func (s *Static) Authenticate(ctx context.Context) error { return nil }

// Client returns the wrapped HTTP client
func (s *Static) Client(ctx context.Context) (*http.Client, error) {
	if s.HTTPClient == nil {
		return http.DefaultClient, nil
	}
	return s.HTTPClient, nil
}

var (
	_ Provider = (*Interactive)(nil)
	_ Provider = (*Static)(nil)
)
