package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"edmwatch/types"
)

// State represents the browser state machine
type State string

const (
	StateLoading    State = "loading"
	StateBrowsing   State = "browsing"
	StateRefreshing State = "refreshing"
	StateError      State = "error"
)

// visibleRows is how many feed items fit in the list viewport
const visibleRows = 15

// Model represents the feed browser state
type Model struct {
	// Feed API client
	Client *FeedClient

	// Feed data
	Items       []types.Item
	LastUpdated string

	// Local UI state
	State      State
	Cursor     int
	Offset     int
	TierFilter int // 0 means all tiers
	StatusLine string
	Err        error
}

// NewModel creates a new feed browser model
func NewModel(apiURL string) Model {
	return Model{
		Client: NewFeedClient(apiURL),
		State:  StateLoading,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return loadFeed(m.Client, m.TierFilter)
}

// selected returns the item under the cursor, if any
func (m Model) selected() *types.Item {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return nil
	}
	return &m.Items[m.Cursor]
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateLoading:
		return StatusStyle.Render("⏳ Loading feed...")
	case StateRefreshing:
		return StatusStyle.Render("🔄 Running pipeline on server...")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", errMsg))
	default:
		return ""
	}
}

// filterLabel describes the active tier filter for the header
func (m Model) filterLabel() string {
	switch m.TierFilter {
	case types.TierGovernment:
		return "tier 1 (government)"
	case types.TierTrade:
		return "tier 2 (trade/participants)"
	case types.TierNews:
		return "tier 3 (news)"
	default:
		return "all tiers"
	}
}
