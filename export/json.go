package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"edmwatch/types"
)

// WriteJSON writes the structured export: last-updated stamp, count, items.
func WriteJSON(w io.Writer, items []types.Item, lastUpdated time.Time) error {
	out := types.FeedOutput{
		LastUpdated: lastUpdated,
		TotalItems:  len(items),
		Items:       items,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode feed output: %w", err)
	}
	return nil
}

// WriteJSONFile writes the JSON draft to path.
func WriteJSONFile(path string, items []types.Item, lastUpdated time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()
	return WriteJSON(f, items, lastUpdated)
}

// ReadJSONFile loads a previously written feed export, for the API server
// and the demo browser.
func ReadJSONFile(path string) (types.FeedOutput, error) {
	var out types.FeedOutput

	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("read feed file: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode feed file: %w", err)
	}
	return out, nil
}
