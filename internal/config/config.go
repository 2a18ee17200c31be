package config

// Config represents the application configuration
type Config struct {
	Graph   GraphConfig   `toml:"graph"`
	Auth    AuthConfig    `toml:"auth"`
	History HistoryConfig `toml:"history"`
}

// GraphConfig contains Microsoft Graph API settings
type GraphConfig struct {
	BaseURL   string `toml:"base_url"`
	PageSize  int    `toml:"page_size"`
	PageLimit int    `toml:"page_limit"`
}

// AuthConfig contains Microsoft identity platform settings
type AuthConfig struct {
	ClientID     string   `toml:"client_id"`
	TenantID     string   `toml:"tenant_id"`
	Scopes       []string `toml:"scopes"`
	TokenPath    string   `toml:"token_path"`
	CallbackPort int      `toml:"callback_port"`
}

// HistoryConfig contains search-history settings
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			BaseURL:   "https://graph.microsoft.com/v1.0",
			PageSize:  50,
			PageLimit: 1000,
		},
		Auth: AuthConfig{
			TenantID:     "common",
			Scopes:       []string{"Mail.Read", "offline_access"},
			TokenPath:    "~/.config/mailscan/token.json",
			CallbackPort: 8476,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "~/.local/share/mailscan/history.db",
		},
	}
}
