package relevance

import (
	"testing"

	"edmwatch/config"
)

func fixtureRules() config.Rules {
	return config.Rules{
		StrictKeywords:         []string{"prediction market", "kalshi"},
		SecondaryKeywords:      []string{"cftc"},
		ExcludedDomains:        []string{"somefarm.com", "jdsupra.com"},
		ExcludedSourcePatterns: []string{"Law360"},
		ApprovedNewsSources:    []string{"reuters", "bloomberg"},
		JunkTitlePatterns:      []string{`^subscribe`, `^read more`},
		MinTitleLength:         15,
	}
}

func TestRelevanceModes(t *testing.T) {
	g := NewGate(fixtureRules())

	cases := []struct {
		name   string
		text   string
		strict bool
		broad  bool
	}{
		{"strict keyword", "Kalshi wins appeal over election contracts", true, true},
		{"secondary keyword only", "CFTC announces new commissioner", false, true},
		{"case insensitive", "PREDICTION MARKET rules finalized", true, true},
		{"off topic", "Local bakery opens downtown", false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.StrictlyRelevant(c.text); got != c.strict {
				t.Errorf("StrictlyRelevant(%q) = %v; want %v", c.text, got, c.strict)
			}
			if got := g.BroadlyRelevant(c.text); got != c.broad {
				t.Errorf("BroadlyRelevant(%q) = %v; want %v", c.text, got, c.broad)
			}
		})
	}
}

func TestExcluded(t *testing.T) {
	g := NewGate(fixtureRules())

	cases := []struct {
		name   string
		url    string
		title  string
		source string
		want   bool
	}{
		{"denylisted domain", "https://somefarm.com/copy-456", "Kalshi story", "News", true},
		{"denylisted publisher", "https://example.com/a", "Kalshi story", "Law360", true},
		{"publisher fragment in title", "https://example.com/a", "Law360 covers Kalshi", "News", true},
		{"clean", "https://cftc.gov/press/123", "Kalshi story", "Reuters", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.Excluded(c.url, c.title, c.source); got != c.want {
				t.Fatalf("Excluded(%q, %q, %q) = %v; want %v", c.url, c.title, c.source, got, c.want)
			}
		})
	}
}

// A relevant title from an excluded domain must still be dropped:
// exclusion is independent of relevance and short-circuits first.
func TestExclusionPrecedesRelevance(t *testing.T) {
	g := NewGate(fixtureRules())

	title := "Kalshi prediction market expands"
	url := "https://somefarm.com/copy"

	if !g.StrictlyRelevant(title) {
		t.Fatalf("fixture title should be strictly relevant")
	}
	if !g.Excluded(url, title, "News") {
		t.Fatalf("fixture URL should be excluded")
	}
}

func TestJunkTitle(t *testing.T) {
	g := NewGate(fixtureRules())

	cases := []struct {
		title string
		want  bool
	}{
		{"Subscribe to our newsletter today", true},
		{"Read more about this topic here", true},
		{"short", true},
		{"Kalshi wins appeal over election contracts", false},
	}

	for _, c := range cases {
		if got := g.JunkTitle(c.title); got != c.want {
			t.Errorf("JunkTitle(%q) = %v; want %v", c.title, got, c.want)
		}
	}
}

func TestApprovedNews(t *testing.T) {
	g := NewGate(fixtureRules())

	if !g.ApprovedNews("Reuters") {
		t.Fatalf("Reuters should be approved")
	}
	if g.ApprovedNews("Some Random Blog") {
		t.Fatalf("unknown publisher should not be approved")
	}
}
