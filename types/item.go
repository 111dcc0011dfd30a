package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Category buckets shown on the dashboard heatmap. An item belongs to
// exactly one.
const (
	CategoryFederal      = "federal"
	CategoryState        = "state"
	CategoryEnforcement  = "enforcement"
	CategoryCourts       = "courts"
	CategoryTrade        = "trade"
	CategoryParticipants = "participants"
	CategoryNews         = "news"
)

// Priority levels derived from outcome language in the title.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Source authority tiers.
const (
	TierGovernment = 1
	TierTrade      = 2
	TierNews       = 3
)

// RawItem is what a source adapter yields before any processing.
// Only URL is required; everything else is best-effort.
type RawItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Summary     string    `json:"summary,omitempty"`
	SourceHint  string    `json:"source_hint,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// Item is the canonical classified record emitted by the pipeline.
// It is constructed once after classification and never mutated.
type Item struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Source             string `json:"source"`
	URL                string `json:"url"`
	Date               string `json:"date"` // YYYY-MM-DD
	Category           string `json:"category"`
	Tier               int    `json:"tier"`
	Priority           string `json:"priority"`
	State              string `json:"state,omitempty"`
	NeedsPrimarySource bool   `json:"needs_primary_source"`
}

// FeedOutput is the top-level wrapper for the JSON export.
type FeedOutput struct {
	LastUpdated time.Time `json:"last_updated"`
	TotalItems  int       `json:"total_items"`
	Items       []Item    `json:"items"`
}

// GenerateID derives a short stable identifier from title and URL.
// The same pair always hashes to the same ID, so downstream consumers
// can treat it as a durable primary key across runs.
func GenerateID(title, url string) string {
	hash := sha256.Sum256([]byte(title + url))
	return hex.EncodeToString(hash[:])[:12]
}

// PriorityRank maps a priority label to its sort rank (high first).
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
