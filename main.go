package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"edmwatch/config"
	"edmwatch/deduplication"
	"edmwatch/export"
	"edmwatch/pipeline"
	"edmwatch/sources"
	"edmwatch/types"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	parallel := flag.Bool("parallel", true, "fetch all sources concurrently")
	flag.Parse()

	settings := config.LoadSettings()
	rules := config.DefaultRules()

	seen, err := deduplication.LoadSeenSet(settings.SeenURLsPath)
	if err != nil {
		log.Fatalf("load seen URLs: %v", err)
	}
	log.Printf("loaded %d previously seen URLs from %s", seen.Len(), settings.SeenURLsPath)

	// The Redis Bloom filter mirrors the seen set for other consumers;
	// the file stays authoritative.
	var bloom *deduplication.RedisBloom
	if settings.RedisAddr != "" {
		bloom, err = deduplication.NewRedisBloom(deduplication.BloomConfig{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
			Key:      settings.BloomKey,
		})
		if err != nil {
			log.Printf("redis bloom unavailable, continuing without mirror: %v", err)
			bloom = nil
		} else {
			defer bloom.Close()
		}
	}

	client := sources.NewClient(settings.RequestTimeout, settings.FetchRetries)
	adapters := buildAdapters(client, settings)

	p := pipeline.New(rules, adapters, seen)

	ctx := context.Background()
	var report pipeline.RunReport
	if *parallel {
		report = p.RunParallel(ctx)
	} else {
		report = p.Run(ctx)
	}

	for _, result := range report.Results {
		if result.Err != nil {
			log.Printf("  %-40s FAILED: %v", result.Adapter, result.Err)
			continue
		}
		log.Printf("  %-40s fetched %3d, accepted %3d", result.Adapter, result.Fetched, result.Accepted)
	}

	items := report.Items
	if err := export.WriteCSVFile(settings.CSVPath, items); err != nil {
		log.Fatalf("write CSV: %v", err)
	}
	if err := export.WriteJSONFile(settings.JSONPath, items, report.RunDate); err != nil {
		log.Fatalf("write JSON: %v", err)
	}
	if err := export.AppendSeenURLs(settings.SeenURLsPath, items); err != nil {
		log.Fatalf("record seen URLs: %v", err)
	}
	if bloom != nil {
		if err := export.MirrorSeenURLs(bloom, items); err != nil {
			log.Printf("bloom mirror update failed: %v", err)
		}
	}

	if settings.S3Bucket != "" {
		archiver, err := export.NewS3Archiver(ctx, export.S3Config{
			Bucket:       settings.S3Bucket,
			Prefix:       settings.S3Prefix,
			Region:       settings.S3Region,
			Profile:      settings.S3Profile,
			UsePathStyle: settings.S3UsePathStyle,
		})
		if err != nil {
			log.Printf("s3 archiver unavailable: %v", err)
		} else if err := archiver.ArchiveRun(ctx, items, report.RunDate); err != nil {
			log.Printf("s3 archive failed: %v", err)
		}
	}

	if len(settings.KafkaBrokers) > 0 && settings.KafkaTopic != "" {
		publisher, err := export.NewPublisher(export.PublisherConfig{
			Brokers: settings.KafkaBrokers,
			Topic:   settings.KafkaTopic,
		})
		if err != nil {
			log.Printf("kafka publisher unavailable: %v", err)
		} else {
			if err := publisher.PublishItems(items); err != nil {
				log.Printf("kafka publish failed: %v", err)
			}
			publisher.Close()
		}
	}

	printRunSummary(items, settings)

	if len(items) == 0 {
		os.Exit(1)
	}
}

// buildAdapters assembles the full source roster: Federal Register API,
// RSS feeds, scraped listing pages, and the news search.
func buildAdapters(client *sources.Client, settings config.Settings) []sources.Adapter {
	var adapters []sources.Adapter

	adapters = append(adapters, sources.NewFederalRegisterAdapter(client, settings.DaysBack))
	adapters = append(adapters, sources.DefaultFeedAdapters(client)...)

	// Scraped pages carry bare link text, so they gain the most from
	// summary enrichment when it is enabled.
	for _, adapter := range sources.DefaultScrapeAdapters(client) {
		if settings.EnrichSummaries {
			adapter = sources.Enriched(adapter)
		}
		adapters = append(adapters, adapter)
	}

	adapters = append(adapters, sources.NewNewsSearchAdapter(client))
	return adapters
}

// printRunSummary logs batch statistics and a short preview of the top
// ranked items.
func printRunSummary(items []types.Item, settings config.Settings) {
	log.Printf("run complete: %d new items", len(items))

	tiers := map[int]int{}
	categories := map[string]int{}
	priorities := map[string]int{}
	needsPrimary := 0
	for _, item := range items {
		tiers[item.Tier]++
		categories[item.Category]++
		priorities[item.Priority]++
		if item.NeedsPrimarySource {
			needsPrimary++
		}
	}

	log.Printf("  by tier:     gov=%d trade=%d news=%d", tiers[types.TierGovernment], tiers[types.TierTrade], tiers[types.TierNews])
	log.Printf("  by priority: high=%d medium=%d low=%d", priorities[types.PriorityHigh], priorities[types.PriorityMedium], priorities[types.PriorityLow])
	for category, n := range categories {
		log.Printf("  category %-12s %d", category, n)
	}
	if needsPrimary > 0 {
		log.Printf("  %d item(s) need primary source confirmation", needsPrimary)
	}

	preview := items
	if len(preview) > 20 {
		preview = preview[:20]
	}
	for i, item := range preview {
		log.Printf("  %2d. [T%d/%s] %s  %s", i+1, item.Tier, item.Priority, item.Date, item.Title)
	}

	log.Printf("outputs: %s, %s", settings.CSVPath, settings.JSONPath)
}
