package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/skoval/mailscan/internal/config"
	"github.com/skoval/mailscan/internal/history"
	"github.com/skoval/mailscan/internal/output"
	"github.com/skoval/mailscan/internal/search"
)

var (
	searchStart string
	searchEnd   string
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>...",
	Short: "Search message subjects across every mail folder",
	Long: `Search scans every folder in the mailbox, including Junk and other
folders that default searches skip, for messages whose subject contains any
of the given keywords. Matching is a literal, case-insensitive substring
check; dates bound the received time.

Examples:
  mailscan search invoice
  mailscan search invoice receipt
  mailscan search invoice --start 2024-11-01 --end 2024-11-30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchStart, "start", "", "earliest received date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchEnd, "end", "", "latest received date (YYYY-MM-DD)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	start, err := parseDateFlag(searchStart)
	if err != nil {
		return err
	}
	end, err := parseDateFlag(searchEnd)
	if err != nil {
		return err
	}

	client, err := mailClient(ctx, cfg)
	if err != nil {
		return err
	}

	searcher := &search.Searcher{Client: client, Log: slog.Default()}
	records, err := searcher.Search(ctx, search.Options{
		Keywords: args,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Found %d matching message(s)\n\n", len(records))

	if err := output.Output(outputFmt, records); err != nil {
		return err
	}

	recordHistory(ctx, cfg, args, start, end, len(records))
	return nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag as UTC midnight
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return &t, nil
}

// recordHistory logs the search locally. Best effort: a broken history
// database should not fail a search that already printed results.
func recordHistory(ctx context.Context, cfg *config.Config, keywords []string, start, end *time.Time, count int) {
	if !cfg.History.Enabled {
		return
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Warn("could not open search history", "error", err)
		return
	}
	defer store.Close()

	err = store.Record(ctx, &history.Search{
		Keywords:    keywords,
		Start:       start,
		End:         end,
		ResultCount: count,
	})
	if err != nil {
		slog.Warn("could not record search history", "error", err)
	}
}
