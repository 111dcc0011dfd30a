// Package normalize turns raw adapter output into clean display strings
// and best-effort publication dates.
package normalize

import (
	"regexp"
	"strings"
	"time"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// DateLayout is the canonical date format for classified items.
const DateLayout = "2006-01-02"

// StripHTML removes markup tags from text.
func StripHTML(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}

// CollapseWhitespace trims and squeezes internal whitespace runs.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// CleanTitle strips markup, drops a trailing " - Publisher" suffix, and
// collapses whitespace.
func CleanTitle(title string) string {
	title = StripHTML(title)
	if idx := strings.LastIndex(title, " - "); idx >= 0 {
		title = title[:idx]
	}
	return CollapseWhitespace(title)
}

// ExtractSource pulls the publisher from a "Headline - Publisher" title,
// splitting on the last separator. Returns "News" when no suffix exists,
// so feed search results without an explicit source still get a label.
func ExtractSource(title string) string {
	title = StripHTML(title)
	if idx := strings.LastIndex(title, " - "); idx >= 0 {
		return CollapseWhitespace(title[idx+3:])
	}
	return "News"
}

// FormatDate renders a timestamp as YYYY-MM-DD. A zero time yields the
// fallback date instead; callers pass the run date as fallback. Using the
// fetch date conflates fetch-time with event-time for ranking, which can
// surface re-discovered old items ahead of genuinely new ones, but the
// upstream simply has no date to offer.
func FormatDate(published time.Time, fallback time.Time) string {
	if published.IsZero() {
		return fallback.Format(DateLayout)
	}
	return published.Format(DateLayout)
}
