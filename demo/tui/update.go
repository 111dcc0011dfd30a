package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case FeedLoadedMsg:
		return m.handleFeedLoaded(msg)
	case RefreshDoneMsg:
		return m.handleRefreshDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+visibleRows {
				m.Offset = m.Cursor - visibleRows + 1
			}
		}
	case "t":
		// Cycle tier filter: all -> 1 -> 2 -> 3 -> all
		m.TierFilter = (m.TierFilter + 1) % 4
		m.Cursor = 0
		m.Offset = 0
		m.State = StateLoading
		return m, loadFeed(m.Client, m.TierFilter)
	case "r", "R":
		if m.State == StateBrowsing || m.State == StateError {
			m.State = StateRefreshing
			m.StatusLine = ""
			return m, triggerRefresh(m.Client)
		}
	}
	return m, nil
}

// handleFeedLoaded processes a feed fetch result
func (m Model) handleFeedLoaded(msg FeedLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}

	m.Items = msg.Feed.Items
	m.LastUpdated = msg.Feed.LastUpdated.Format("2006-01-02 15:04 MST")
	m.State = StateBrowsing
	m.Err = nil

	if m.Cursor >= len(m.Items) {
		m.Cursor = 0
		m.Offset = 0
	}
	return m, nil
}

// handleRefreshDone processes a server-side pipeline run result
func (m Model) handleRefreshDone(msg RefreshDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}

	m.StatusLine = fmt.Sprintf("Refresh complete: %d new items", msg.NewItems)
	m.State = StateLoading
	return m, loadFeed(m.Client, m.TierFilter)
}
