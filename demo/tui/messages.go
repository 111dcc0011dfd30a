package tui

import "edmwatch/types"

// Messages for the tea program

// FeedLoadedMsg is sent when the feed has been fetched from the API
type FeedLoadedMsg struct {
	Feed *types.FeedOutput
	Err  error
}

// RefreshDoneMsg is sent when a server-side pipeline run finishes
type RefreshDoneMsg struct {
	NewItems int
	Err      error
}
