package deduplication

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// SeenSet holds the URLs surfaced in previous runs. The pipeline only
// queries it; the caller appends newly emitted URLs after a run completes.
type SeenSet struct {
	urls map[string]struct{}
}

// NewSeenSet builds a set from pre-normalized URLs (used by tests).
func NewSeenSet(urls ...string) *SeenSet {
	s := &SeenSet{urls: make(map[string]struct{}, len(urls))}
	for _, u := range urls {
		s.urls[NormalizeURL(u)] = struct{}{}
	}
	return s
}

// LoadSeenSet reads the newline-delimited seen-URL file. Blank lines and
// lines starting with '#' are ignored. A missing file yields an empty set.
func LoadSeenSet(path string) (*SeenSet, error) {
	s := &SeenSet{urls: make(map[string]struct{})}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("open seen urls file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.urls[NormalizeURL(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read seen urls file: %w", err)
	}
	return s, nil
}

// Contains reports whether the URL was surfaced in a previous run.
func (s *SeenSet) Contains(url string) bool {
	_, ok := s.urls[NormalizeURL(url)]
	return ok
}

// Len returns the number of tracked URLs.
func (s *SeenSet) Len() int {
	return len(s.urls)
}

// NormalizeURL canonicalizes a URL for identity comparison. Matching is
// case-insensitive on the whole URL, mirroring the seen-file format.
func NormalizeURL(url string) string {
	return strings.ToLower(strings.TrimSpace(url))
}
