// Package sources contains the upstream adapters: Federal Register API
// search, RSS/Atom feeds, HTML press-release scrapes, and Google News
// search. Every adapter yields zero or more raw items and reports
// failures through its return value; nothing here panics past the
// adapter boundary.
package sources

import (
	"context"

	"edmwatch/types"
)

// RelevanceMode selects which keyword gate the pipeline applies to an
// adapter's items.
type RelevanceMode int

const (
	// ModeStrict requires a must-contain keyword; used for high-volume,
	// low-precision sources like broad term search.
	ModeStrict RelevanceMode = iota
	// ModeBroad accepts the secondary keyword set too; used for sources
	// that are on-topic by construction, like a regulator's own feed.
	ModeBroad
)

// Profile describes an adapter's nominal trust level and routing rules.
type Profile struct {
	Name         string
	Mode         RelevanceMode
	BaseCategory string
	BaseTier     int
	State        string
	NeedsPrimary bool
	// RouteByURL enables news-search routing: government URLs become
	// tier-1 federal items, approved publishers become tier-3 news items
	// flagged needs-primary, and everything else is dropped.
	RouteByURL bool
}

// Adapter is one upstream source. Fetch returns whatever it could get;
// a non-nil error means the adapter contributed nothing this run.
type Adapter interface {
	Profile() Profile
	Fetch(ctx context.Context) ([]types.RawItem, error)
}
