package search

import (
	"errors"
	"fmt"
)

// ErrNoKeywords is returned when a search is attempted with an empty keyword
// set. Rejected before any network call.
var ErrNoKeywords = errors.New("at least one search keyword is required")

// Stage identifies which step of the pipeline produced an error
type Stage string

const (
	StageListFolders  Stage = "list-folders"
	StageListMessages Stage = "list-messages"
)

// StageError wraps a pipeline failure with the stage that produced it
type StageError struct {
	Stage  Stage
	Folder string // display name, set for message-stage failures
	Err    error
}

func (e *StageError) Error() string {
	if e.Folder != "" {
		return fmt.Sprintf("%s (folder %q): %v", e.Stage, e.Folder, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
