// Package rank orders the deduplicated batch for presentation.
package rank

import (
	"sort"

	"edmwatch/types"
)

// Sort totally orders items by (date descending, tier ascending, priority
// rank ascending): most recent first, most authoritative within a day,
// most urgent within a tier. The sort is stable so equal keys preserve
// arrival order.
func Sort(items []types.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return types.PriorityRank(a.Priority) < types.PriorityRank(b.Priority)
	})
}
