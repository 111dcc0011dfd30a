package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"edmwatch/api"
	"edmwatch/config"
	"edmwatch/deduplication"
	"edmwatch/export"
	"edmwatch/pipeline"
	"edmwatch/sources"
	"edmwatch/types"
)

// fileStore serves the feed from the JSON export on disk.
type fileStore struct {
	path string
}

func (s fileStore) Load() (types.FeedOutput, error) {
	return export.ReadJSONFile(s.path)
}

// pipelineRefresher re-runs the fetch pipeline on demand and rewrites
// the exports the fileStore reads.
type pipelineRefresher struct {
	settings config.Settings
	rules    config.Rules
}

func (r *pipelineRefresher) Refresh(ctx context.Context) (int, error) {
	seen, err := deduplication.LoadSeenSet(r.settings.SeenURLsPath)
	if err != nil {
		return 0, err
	}

	client := sources.NewClient(r.settings.RequestTimeout, r.settings.FetchRetries)
	var adapters []sources.Adapter
	adapters = append(adapters, sources.NewFederalRegisterAdapter(client, r.settings.DaysBack))
	adapters = append(adapters, sources.DefaultFeedAdapters(client)...)
	adapters = append(adapters, sources.DefaultScrapeAdapters(client)...)
	adapters = append(adapters, sources.NewNewsSearchAdapter(client))

	report := pipeline.New(r.rules, adapters, seen).RunParallel(ctx)

	if err := export.WriteCSVFile(r.settings.CSVPath, report.Items); err != nil {
		return 0, err
	}
	if err := export.WriteJSONFile(r.settings.JSONPath, report.Items, report.RunDate); err != nil {
		return 0, err
	}
	if err := export.AppendSeenURLs(r.settings.SeenURLsPath, report.Items); err != nil {
		return 0, err
	}

	return len(report.Items), nil
}

func main() {
	// Load environment
	_ = godotenv.Load()

	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	settings := config.LoadSettings()

	server := api.NewServer(
		fileStore{path: settings.JSONPath},
		&pipelineRefresher{settings: settings, rules: config.DefaultRules()},
	)
	router := api.NewRouter(server)

	log.Printf("feed API listening on %s (export: %s)", *addr, settings.JSONPath)
	if err := router.Run(*addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
