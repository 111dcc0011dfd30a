package export

import (
	"fmt"
	"os"

	"edmwatch/deduplication"
	"edmwatch/types"
)

// AppendSeenURLs appends the URLs of newly emitted items to the seen-URL
// file, one normalized lowercase URL per line. The pipeline itself never
// writes this file; the caller invokes this after a successful run.
func AppendSeenURLs(path string, items []types.Item) error {
	if len(items) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open seen urls file: %w", err)
	}
	defer f.Close()

	for _, item := range items {
		if _, err := fmt.Fprintln(f, deduplication.NormalizeURL(item.URL)); err != nil {
			return fmt.Errorf("append seen url: %w", err)
		}
	}
	return nil
}

// MirrorSeenURLs adds newly emitted URLs to the Redis Bloom filter, when
// configured. Mirror failures are reported but should not fail the run.
func MirrorSeenURLs(bloom *deduplication.RedisBloom, items []types.Item) error {
	if bloom == nil {
		return nil
	}

	var lastErr error
	for _, item := range items {
		if err := bloom.Add(item.URL); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
