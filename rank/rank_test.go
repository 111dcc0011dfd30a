package rank

import (
	"testing"

	"edmwatch/types"
)

func TestSortCompositeKey(t *testing.T) {
	items := []types.Item{
		{ID: "a", Date: "2025-01-01", Tier: 1, Priority: types.PriorityHigh},
		{ID: "b", Date: "2025-01-02", Tier: 2, Priority: types.PriorityMedium},
		{ID: "c", Date: "2025-01-01", Tier: 1, Priority: types.PriorityMedium},
	}

	Sort(items)

	want := []string{"b", "a", "c"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: got %q, want %q (order: %v)", i, items[i].ID, id, ids(items))
		}
	}
}

func TestSortTierBeforePriority(t *testing.T) {
	items := []types.Item{
		{ID: "news-high", Date: "2025-01-01", Tier: 3, Priority: types.PriorityHigh},
		{ID: "gov-low", Date: "2025-01-01", Tier: 1, Priority: types.PriorityLow},
	}

	Sort(items)

	if items[0].ID != "gov-low" {
		t.Fatalf("tier must dominate priority, got order %v", ids(items))
	}
}

func TestSortStableOnEqualKeys(t *testing.T) {
	items := []types.Item{
		{ID: "first", Date: "2025-01-01", Tier: 1, Priority: types.PriorityHigh},
		{ID: "second", Date: "2025-01-01", Tier: 1, Priority: types.PriorityHigh},
		{ID: "third", Date: "2025-01-01", Tier: 1, Priority: types.PriorityHigh},
	}

	Sort(items)

	want := []string{"first", "second", "third"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("stable sort must preserve arrival order, got %v", ids(items))
		}
	}
}

func ids(items []types.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
