package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skoval/mailscan/internal/config"
	"github.com/skoval/mailscan/internal/output"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List every mail folder in the mailbox",
	RunE:  runFolders,
}

func init() {
	rootCmd.AddCommand(foldersCmd)
}

func runFolders(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	client, err := mailClient(ctx, cfg)
	if err != nil {
		return err
	}

	folders, err := client.ListAllFolders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list folders: %w", err)
	}

	return output.Output(outputFmt, folders)
}
