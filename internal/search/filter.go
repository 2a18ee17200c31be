package search

import (
	"fmt"
	"strings"
	"time"
)

// filterTimeLayout serializes date bounds as unambiguous UTC timestamps
const filterTimeLayout = "2006-01-02T15:04:05Z"

// BuildFilter composes the server-side $filter expression: a parenthesized
// disjunction of contains(subject, ...) clauses, optionally conjoined with a
// receivedDateTime window.
func BuildFilter(keywords []string, start, end *time.Time) string {
	clauses := make([]string, len(keywords))
	for i, k := range keywords {
		clauses[i] = fmt.Sprintf("contains(subject,'%s')", escapeODataString(k))
	}

	filter := "(" + strings.Join(clauses, " or ") + ")"

	if start != nil {
		filter += " and receivedDateTime ge " + start.UTC().Format(filterTimeLayout)
	}
	if end != nil {
		filter += " and receivedDateTime le " + end.UTC().Format(filterTimeLayout)
	}

	return filter
}

// escapeODataString doubles single quotes so a keyword cannot break out of
// the string literal in the filter expression
func escapeODataString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
