package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'mailscan config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Auth.TokenPath, err = expandPath(c.Auth.TokenPath)
	if err != nil {
		return err
	}

	c.History.Path, err = expandPath(c.History.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Graph validation
	if c.Graph.BaseURL == "" {
		errs = append(errs, errors.New("graph.base_url is required"))
	}
	if c.Graph.PageSize < 1 || c.Graph.PageSize > 1000 {
		errs = append(errs, errors.New("graph.page_size must be between 1 and 1000"))
	}
	if c.Graph.PageLimit < 1 {
		errs = append(errs, errors.New("graph.page_limit must be at least 1"))
	}

	// Auth validation
	if c.Auth.TenantID == "" {
		errs = append(errs, errors.New("auth.tenant_id is required"))
	}
	if len(c.Auth.Scopes) == 0 {
		errs = append(errs, errors.New("auth.scopes must name at least one scope"))
	}
	if c.Auth.TokenPath == "" {
		errs = append(errs, errors.New("auth.token_path is required"))
	}
	if c.Auth.CallbackPort < 1 || c.Auth.CallbackPort > 65535 {
		errs = append(errs, errors.New("auth.callback_port must be between 1 and 65535"))
	}

	// History validation
	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, errors.New("history.path is required when history is enabled"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for token and history files
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Auth.TokenPath),
	}
	if c.History.Enabled {
		dirs = append(dirs, filepath.Dir(c.History.Path))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
