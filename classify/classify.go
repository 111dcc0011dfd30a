// Package classify assigns tier, category, priority, and state to
// filter-passed items. Classification never fails: every item receives
// a tier, a category, and a priority; a missing state is the empty string.
package classify

import (
	"regexp"
	"strings"
	"time"

	"edmwatch/config"
	"edmwatch/normalize"
	"edmwatch/types"
)

// Classifier evaluates keyword and URL signals against an injected ruleset.
type Classifier struct {
	rules         config.Rules
	abbrevPattern *regexp.Regexp
}

// New builds a classifier from the given rules.
func New(rules config.Rules) *Classifier {
	pattern := `\b(` + strings.Join(rules.StateAbbrevs, "|") + `)\b`
	return &Classifier{
		rules:         rules,
		abbrevPattern: regexp.MustCompile(pattern),
	}
}

// Input carries everything the classifier needs about one gated item.
type Input struct {
	Title        string
	Source       string
	URL          string
	PublishedAt  time.Time
	BaseCategory string
	BaseTier     int
	State        string
	NeedsPrimary bool
}

// Classify produces the immutable canonical item. The run date is used as
// the date fallback when the source supplied no parseable timestamp.
func (c *Classifier) Classify(in Input, runDate time.Time) types.Item {
	state := in.State
	if state == "" {
		state = c.State(in.Title)
	}

	return types.Item{
		ID:                 types.GenerateID(in.Title, in.URL),
		Title:              in.Title,
		Source:             in.Source,
		URL:                in.URL,
		Date:               normalize.FormatDate(in.PublishedAt, runDate),
		Category:           c.Category(in.Title, in.BaseCategory),
		Tier:               c.Tier(in.URL, in.Source, in.BaseTier),
		Priority:           c.Priority(in.Title),
		State:              state,
		NeedsPrimarySource: in.NeedsPrimary,
	}
}

// IsGovURL reports whether the URL belongs to a recognized government domain.
func (c *Classifier) IsGovURL(url string) bool {
	urlLower := strings.ToLower(url)
	for _, domain := range c.rules.GovDomains {
		if strings.Contains(urlLower, domain) {
			return true
		}
	}
	return false
}

// Tier applies the one-way trust ratchet: a government URL or a recognized
// regulator name upgrades to tier 1, and nothing ever downgrades below the
// adapter's declared base tier.
func (c *Classifier) Tier(url, source string, baseTier int) int {
	if c.IsGovURL(url) {
		return types.TierGovernment
	}

	sourceLower := strings.ToLower(source)
	for _, name := range c.rules.RegulatorNames {
		if strings.Contains(sourceLower, name) {
			return types.TierGovernment
		}
	}
	return baseTier
}

// Category resolves the topical bucket as an ordered cascade: enforcement
// keywords win over everything, then litigation keywords, then the
// adapter-declared base category. Enforcement and litigation are
// cross-cutting signals that can appear in items sourced as federal or
// state, and a reader filtering for enforcement wants those regardless of
// which agency acted.
func (c *Classifier) Category(title, baseCategory string) string {
	titleLower := strings.ToLower(title)

	for _, kw := range c.rules.EnforcementKeywords {
		if strings.Contains(titleLower, kw) {
			return types.CategoryEnforcement
		}
	}
	for _, kw := range c.rules.CourtsKeywords {
		if strings.Contains(titleLower, kw) {
			return types.CategoryCourts
		}
	}

	// Legacy remap kept for feeds still declaring the old bucket name.
	if baseCategory == "industry" {
		return types.CategoryTrade
	}
	return baseCategory
}

// Priority is high when the title carries outcome language, medium otherwise.
func (c *Classifier) Priority(title string) string {
	titleLower := strings.ToLower(title)
	for _, kw := range c.rules.HighPriorityKeywords {
		if strings.Contains(titleLower, kw) {
			return types.PriorityHigh
		}
	}
	return types.PriorityMedium
}

// State extracts a two-letter jurisdiction code from the title. Full state
// names are checked first, in ruleset order; a bare word-bounded
// abbreviation is the fallback. First match wins, so multi-state titles
// always resolve to the earliest-listed state.
func (c *Classifier) State(title string) string {
	titleLower := strings.ToLower(title)
	for _, state := range c.rules.StateNames {
		if strings.Contains(titleLower, state.Name) {
			return state.Abbrev
		}
	}

	if match := c.abbrevPattern.FindString(title); match != "" {
		return match
	}
	return ""
}
