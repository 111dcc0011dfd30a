package normalize

import (
	"testing"
	"time"
)

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "CFTC Approves Kalshi Designation", "CFTC Approves Kalshi Designation"},
		{"source suffix", "CFTC Approves Kalshi Designation - Reuters", "CFTC Approves Kalshi Designation"},
		{"splits on last separator", "Kalshi - Prediction Markets - Bloomberg", "Kalshi - Prediction Markets"},
		{"markup", "<b>Kalshi</b> sued over <i>event contracts</i>", "Kalshi sued over event contracts"},
		{"whitespace runs", "  Kalshi   wins \t appeal  ", "Kalshi wins appeal"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CleanTitle(c.title); got != c.want {
				t.Fatalf("CleanTitle(%q) = %q; want %q", c.title, got, c.want)
			}
		})
	}
}

func TestExtractSource(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"with suffix", "CFTC Approves Kalshi Designation - Reuters", "Reuters"},
		{"last separator wins", "Kalshi - Prediction Markets - Bloomberg", "Bloomberg"},
		{"no suffix", "CFTC Approves Kalshi Designation", "News"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ExtractSource(c.title); got != c.want {
				t.Fatalf("ExtractSource(%q) = %q; want %q", c.title, got, c.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	fallback := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	published := time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC)
	if got := FormatDate(published, fallback); got != "2025-05-20" {
		t.Fatalf("FormatDate = %q; want 2025-05-20", got)
	}

	if got := FormatDate(time.Time{}, fallback); got != "2025-06-01" {
		t.Fatalf("FormatDate fallback = %q; want 2025-06-01", got)
	}
}
