package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skoval/mailscan/internal/config"
	"github.com/skoval/mailscan/internal/history"
	"github.com/skoval/mailscan/internal/output"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if !cfg.History.Enabled {
		fmt.Println("Search history is disabled in the config.")
		return nil
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open search history: %w", err)
	}
	defer store.Close()

	searches, err := store.ListRecent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read search history: %w", err)
	}

	return output.Output(outputFmt, searches)
}
