// Package deduplication provides the two dedup stages: intra-batch
// fingerprint matching and the cross-run seen-URL set, plus an optional
// Redis-backed Bloom mirror of that set.
package deduplication

import (
	"strings"

	"edmwatch/types"
)

// Fingerprint reduces a title to a cheap approximate-match key: lowercase,
// non-alphanumerics stripped, truncated to maxLen. Two stories sharing a
// fingerprint are treated as the same story reported by multiple sources.
// This trades occasional false merges of similarly-worded headlines against
// the much larger volume of true syndication duplicates. Non-ASCII letters
// are dropped along with punctuation, so accented spellings shorten the key
// and merge slightly more aggressively than their ASCII counterparts.
func Fingerprint(title string, maxLen int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= maxLen {
			break
		}
	}
	return b.String()
}

// Dedupe removes fingerprint duplicates from a batch, keeping the
// first-arriving instance of each story. Arrival order is the tie-break:
// adapters earlier in the fetch order win.
func Dedupe(items []types.Item, fingerprintLen int) []types.Item {
	seen := make(map[string]struct{}, len(items))
	unique := make([]types.Item, 0, len(items))

	for _, item := range items {
		key := Fingerprint(item.Title, fingerprintLen)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}
