package search

import (
	"testing"
	"time"
)

func TestBuildFilter_DateShapes(t *testing.T) {
	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		keywords []string
		start    *time.Time
		end      *time.Time
		want     string
	}{
		{
			name:     "no dates",
			keywords: []string{"x"},
			want:     "(contains(subject,'x'))",
		},
		{
			name:     "start only",
			keywords: []string{"x"},
			start:    &start,
			want:     "(contains(subject,'x')) and receivedDateTime ge 2024-11-01T00:00:00Z",
		},
		{
			name:     "end only",
			keywords: []string{"x"},
			end:      &end,
			want:     "(contains(subject,'x')) and receivedDateTime le 2024-11-30T00:00:00Z",
		},
		{
			name:     "both dates",
			keywords: []string{"x"},
			start:    &start,
			end:      &end,
			want:     "(contains(subject,'x')) and receivedDateTime ge 2024-11-01T00:00:00Z and receivedDateTime le 2024-11-30T00:00:00Z",
		},
		{
			name:     "multiple keywords",
			keywords: []string{"invoice", "receipt"},
			want:     "(contains(subject,'invoice') or contains(subject,'receipt'))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilter(tt.keywords, tt.start, tt.end)
			if got != tt.want {
				t.Errorf("BuildFilter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildFilter_NonUTCDates(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2024, 11, 1, 2, 0, 0, 0, loc)

	got := BuildFilter([]string{"x"}, &start, nil)
	want := "(contains(subject,'x')) and receivedDateTime ge 2024-11-01T00:00:00Z"
	if got != want {
		t.Errorf("BuildFilter() = %q, want %q", got, want)
	}
}

func TestBuildFilter_EscapesSingleQuotes(t *testing.T) {
	got := BuildFilter([]string{"o'brien"}, nil, nil)
	want := "(contains(subject,'o''brien'))"
	if got != want {
		t.Errorf("BuildFilter() = %q, want %q", got, want)
	}
}
