package cli

import (
	"context"
	"fmt"

	"github.com/skoval/mailscan/internal/auth"
	"github.com/skoval/mailscan/internal/config"
	"github.com/skoval/mailscan/internal/graph"
)

// mailClient acquires a session (interactively on first use) and returns a
// Graph client bound to it
func mailClient(ctx context.Context, cfg *config.Config) (*graph.Client, error) {
	var provider auth.Provider = auth.New(cfg.Auth)

	if !provider.IsAuthenticated() {
		fmt.Println("No active session, starting sign-in...")
		if err := provider.Authenticate(ctx); err != nil {
			return nil, fmt.Errorf("authentication failed: %w", err)
		}
	}

	httpClient, err := provider.Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	return graph.New(cfg.Graph.BaseURL, httpClient,
		graph.WithPageSize(cfg.Graph.PageSize),
		graph.WithPageLimit(cfg.Graph.PageLimit),
	), nil
}
