package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// loadFeed creates a command to fetch the feed from the API
func loadFeed(client *FeedClient, tier int) tea.Cmd {
	return func() tea.Msg {
		feed, err := client.GetItems(tier)
		return FeedLoadedMsg{
			Feed: feed,
			Err:  err,
		}
	}
}

// triggerRefresh creates a command that re-runs the pipeline on the server
func triggerRefresh(client *FeedClient) tea.Cmd {
	return func() tea.Msg {
		newItems, err := client.Refresh()
		return RefreshDoneMsg{
			NewItems: newItems,
			Err:      err,
		}
	}
}
