// Package search implements the mailbox-wide subject search pipeline:
// enumerate folders, fetch server-filtered messages per folder, re-check
// keywords client-side, and project the survivors into output records.
package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/skoval/mailscan/internal/graph"
)

// MailClient is the narrow Graph surface the searcher needs
type MailClient interface {
	ListAllFolders(ctx context.Context) ([]graph.Folder, error)
	ListFolderMessages(ctx context.Context, folderID, filter string) ([]graph.Message, error)
}

// Options configures one search invocation
type Options struct {
	Keywords []string   // matched literally, case-insensitive
	Start    *time.Time // earliest received date, inclusive
	End      *time.Time // latest received date, inclusive
}

// Record is one matching message, normalized for output
type Record struct {
	Sender  string    `json:"sender"`
	Subject string    `json:"subject"`
	SentAt  time.Time `json:"sent_at"`
	Folder  string    `json:"folder"`
}

// Searcher drives the per-folder fan-out over a MailClient
type Searcher struct {
	Client MailClient
	Log    *slog.Logger
}

// Search runs the full pipeline. Results are in folder enumeration order,
// then message order within each folder; no sorting is applied. Any folder
// or page failure aborts the whole search.
func (s *Searcher) Search(ctx context.Context, opts Options) ([]Record, error) {
	if len(opts.Keywords) == 0 {
		return nil, ErrNoKeywords
	}

	log := s.Log
	if log == nil {
		log = slog.Default()
	}

	filter := BuildFilter(opts.Keywords, opts.Start, opts.End)
	log.Debug("built filter expression", "filter", filter)

	folders, err := s.Client.ListAllFolders(ctx)
	if err != nil {
		return nil, &StageError{Stage: StageListFolders, Err: err}
	}
	log.Debug("enumerated folders", "count", len(folders))

	// Folder objects are lost once messages are flattened; keep a lookup to
	// resolve folder names from parentFolderId afterwards.
	folderNames := make(map[string]string, len(folders))
	for _, f := range folders {
		folderNames[f.ID] = f.DisplayName
	}

	var matched []graph.Message
	for _, f := range folders {
		messages, err := s.Client.ListFolderMessages(ctx, f.ID, filter)
		if err != nil {
			return nil, &StageError{Stage: StageListMessages, Folder: f.DisplayName, Err: err}
		}
		if len(messages) > 0 {
			log.Debug("folder matched", "folder", f.DisplayName, "messages", len(messages))
		}
		matched = append(matched, messages...)
	}

	records := make([]Record, 0, len(matched))
	for _, m := range matched {
		// The server-side contains filter is case-sensitive on some tenants,
		// so re-check locally. This only drops items, never adds.
		if !subjectMatches(m.Subject, opts.Keywords) {
			continue
		}

		records = append(records, Record{
			Sender:  m.SenderName(),
			Subject: m.Subject,
			SentAt:  m.SentDateTime,
			// Unknown parent folder resolves to "", not an error
			Folder: folderNames[m.ParentFolderID],
		})
	}

	log.Debug("search complete", "candidates", len(matched), "matches", len(records))
	return records, nil
}

// subjectMatches reports whether the subject is non-empty and contains any of
// the keywords, case-insensitively
func subjectMatches(subject string, keywords []string) bool {
	if subject == "" {
		return false
	}

	lower := strings.ToLower(subject)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
