// Package relevance implements the boolean gates applied between
// normalization and classification: keyword relevance, source/domain
// exclusion, and junk-title rejection.
package relevance

import (
	"regexp"
	"strings"

	"edmwatch/config"
)

// Gate evaluates relevance and exclusion rules over normalized text.
type Gate struct {
	rules        config.Rules
	junkPatterns []*regexp.Regexp
}

// NewGate compiles the junk-title patterns and returns a ready gate.
func NewGate(rules config.Rules) *Gate {
	patterns := make([]*regexp.Regexp, 0, len(rules.JunkTitlePatterns))
	for _, p := range rules.JunkTitlePatterns {
		if re, err := regexp.Compile(p); err == nil {
			patterns = append(patterns, re)
		}
	}
	return &Gate{rules: rules, junkPatterns: patterns}
}

// StrictlyRelevant reports whether text contains one of the must-contain
// keywords. High-volume sources (broad term search, generic news search)
// require this narrower check.
func (g *Gate) StrictlyRelevant(text string) bool {
	return containsAny(strings.ToLower(text), g.rules.StrictKeywords)
}

// BroadlyRelevant accepts the strict set plus the looser secondary set.
// Sources that are on-topic by construction may use this mode.
func (g *Gate) BroadlyRelevant(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, g.rules.StrictKeywords) || containsAny(lower, g.rules.SecondaryKeywords)
}

// Excluded reports whether the item's URL hits the domain denylist or its
// resolved source name hits the publisher denylist. Either match drops
// the item before any classification work.
func (g *Gate) Excluded(url, title, source string) bool {
	urlLower := strings.ToLower(url)
	for _, domain := range g.rules.ExcludedDomains {
		if strings.Contains(urlLower, domain) {
			return true
		}
	}

	combined := strings.ToLower(title + " " + source)
	for _, pattern := range g.rules.ExcludedSourcePatterns {
		if strings.Contains(combined, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// ApprovedNews reports whether a publisher is on the quality-news allowlist.
func (g *Gate) ApprovedNews(source string) bool {
	return containsAny(strings.ToLower(source), g.rules.ApprovedNewsSources)
}

// JunkTitle rejects navigation fragments, mailto noise, and titles too
// short to be headlines.
func (g *Gate) JunkTitle(title string) bool {
	lower := strings.ToLower(strings.TrimSpace(title))
	if len(lower) < g.rules.MinTitleLength {
		return true
	}
	for _, re := range g.junkPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
