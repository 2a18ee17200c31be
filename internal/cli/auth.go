package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skoval/mailscan/internal/auth"
	"github.com/skoval/mailscan/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the mailbox",
	Long: `Login runs the browser sign-in flow and saves the resulting token.

Other commands sign in automatically when no session exists; login forces a
fresh one, which helps after revoking consent or switching accounts.`,
	RunE: runLogin,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a mailbox session exists",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(statusCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	provider := auth.New(cfg.Auth)
	if err := provider.Authenticate(cmd.Context()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	fmt.Println("Sign-in successful.")
	fmt.Printf("Token saved to %s\n", cfg.Auth.TokenPath)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	provider := auth.New(cfg.Auth)
	if provider.IsAuthenticated() {
		fmt.Println("Session: active")
		fmt.Printf("Token:   %s\n", cfg.Auth.TokenPath)
	} else {
		fmt.Println("Session: none (run 'mailscan login')")
	}
	return nil
}
