package auth

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/skoval/mailscan/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	// Nested path exercises directory creation
	path := filepath.Join(t.TempDir(), "mailscan", "token.json")

	want := &oauth2.Token{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
	}

	if err := saveToken(path, want); err != nil {
		t.Fatalf("saveToken failed: %v", err)
	}

	got, err := loadToken(path)
	if err != nil {
		t.Fatalf("loadToken failed: %v", err)
	}

	if got.AccessToken != want.AccessToken {
		t.Errorf("AccessToken = %q, want %q", got.AccessToken, want.AccessToken)
	}
	if got.RefreshToken != want.RefreshToken {
		t.Errorf("RefreshToken = %q, want %q", got.RefreshToken, want.RefreshToken)
	}
	if !got.Expiry.Equal(want.Expiry) {
		t.Errorf("Expiry = %v, want %v", got.Expiry, want.Expiry)
	}
}

func TestInteractive_IsAuthenticated(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name  string
		token *oauth2.Token
		want  bool
	}{
		{
			name: "no token file",
			want: false,
		},
		{
			name: "live token",
			token: &oauth2.Token{
				AccessToken: "abc",
				Expiry:      time.Now().Add(time.Hour),
			},
			want: true,
		},
		{
			name: "expired with refresh token",
			token: &oauth2.Token{
				AccessToken:  "abc",
				RefreshToken: "def",
				Expiry:       time.Now().Add(-time.Hour),
			},
			want: true,
		},
		{
			name: "expired without refresh token",
			token: &oauth2.Token{
				AccessToken: "abc",
				Expiry:      time.Now().Add(-time.Hour),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenPath := filepath.Join(tmpDir, tt.name, "token.json")
			if tt.token != nil {
				if err := saveToken(tokenPath, tt.token); err != nil {
					t.Fatalf("saveToken failed: %v", err)
				}
			}

			p := New(config.AuthConfig{TokenPath: tokenPath})
			if got := p.IsAuthenticated(); got != tt.want {
				t.Errorf("IsAuthenticated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	custom := &http.Client{}
	s := &Static{HTTPClient: custom}

	if !s.IsAuthenticated() {
		t.Error("Static should always report an active session")
	}
	if err := s.Authenticate(context.Background()); err != nil {
		t.Errorf("Authenticate should be a no-op, got %v", err)
	}

	client, err := s.Client(context.Background())
	if err != nil {
		t.Fatalf("Client failed: %v", err)
	}
	if client != custom {
		t.Error("expected the wrapped HTTP client back")
	}
}
