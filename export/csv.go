// Package export writes the ranked batch to its downstream consumers:
// CSV and JSON drafts, the seen-URL file, an optional S3 archive, and an
// optional Kafka topic.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"edmwatch/types"
)

var csvHeader = []string{
	"id", "date", "tier", "priority", "category", "title", "source", "state", "url", "needs_primary_source",
}

// WriteCSV writes the batch in the dashboard's tabular format.
func WriteCSV(w io.Writer, items []types.Item) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, item := range items {
		record := []string{
			item.ID,
			item.Date,
			strconv.Itoa(item.Tier),
			item.Priority,
			item.Category,
			item.Title,
			item.Source,
			item.State,
			item.URL,
			strconv.FormatBool(item.NeedsPrimarySource),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the CSV draft to path.
func WriteCSVFile(path string, items []types.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, items)
}
