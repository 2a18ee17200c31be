package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/skoval/mailscan/internal/graph"
	"github.com/skoval/mailscan/internal/history"
	"github.com/skoval/mailscan/internal/search"
)

// Table writes data as a formatted table to stdout
func Table(data any) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data any) error {
	switch v := data.(type) {
	case []search.Record:
		return recordsTable(w, v)
	case []graph.Folder:
		return foldersTable(w, v)
	case []history.Search:
		return historyTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func recordsTable(w io.Writer, records []search.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No matching messages.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("SENDER", "SUBJECT", "SENT", "FOLDER")

	for _, r := range records {
		err := table.Append([]string{
			truncate(r.Sender, 30),
			truncate(r.Subject, 60),
			r.SentAt.Format("2006-01-02 15:04"),
			r.Folder,
		})
		if err != nil {
			return err
		}
	}

	return table.Render()
}

func foldersTable(w io.Writer, folders []graph.Folder) error {
	if len(folders) == 0 {
		fmt.Fprintln(w, "No folders found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("FOLDER", "ID")

	for _, f := range folders {
		if err := table.Append([]string{f.DisplayName, truncate(f.ID, 44)}); err != nil {
			return err
		}
	}

	return table.Render()
}

func historyTable(w io.Writer, searches []history.Search) error {
	if len(searches) == 0 {
		fmt.Fprintln(w, "No searches recorded yet.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("RAN", "KEYWORDS", "WINDOW", "MATCHES")

	for _, s := range searches {
		err := table.Append([]string{
			s.RanAt.Local().Format("2006-01-02 15:04"),
			truncate(strings.Join(s.Keywords, ", "), 40),
			formatWindow(s),
			fmt.Sprint(s.ResultCount),
		})
		if err != nil {
			return err
		}
	}

	return table.Render()
}

func formatWindow(s history.Search) string {
	const day = "2006-01-02"
	switch {
	case s.Start != nil && s.End != nil:
		return s.Start.Format(day) + " .. " + s.End.Format(day)
	case s.Start != nil:
		return "since " + s.Start.Format(day)
	case s.End != nil:
		return "until " + s.End.Format(day)
	default:
		return "any"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
