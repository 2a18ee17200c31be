package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/skoval/mailscan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

const defaultConfig = `# mailscan configuration
#
# Register an application at https://portal.azure.com (redirect URI
# http://localhost:8476/callback, delegated Mail.Read permission) and put its
# client id below.

[graph]
base_url = "https://graph.microsoft.com/v1.0"
page_size = 50
page_limit = 1000

[auth]
client_id = ""
tenant_id = "common"
scopes = ["Mail.Read", "offline_access"]
token_path = "~/.config/mailscan/token.json"
callback_port = 8476

[history]
enabled = true
path = "~/.local/share/mailscan/history.db"
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file already exists at %s\n", configPath)
		fmt.Println("Use 'mailscan config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configPath)
	fmt.Println("Edit it to set auth.client_id before running 'mailscan login'")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Printf("# %s\n\n", configPath)
	fmt.Print(string(data))
	return nil
}
