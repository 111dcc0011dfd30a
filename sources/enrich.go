package sources

import (
	"context"
	"log"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"

	"edmwatch/types"
)

const (
	enrichWorkers  = 5
	enrichTimeout  = 30 * time.Second
	maxSummaryRune = 500
)

// EnrichSummaries fills in missing summaries by extracting readable text
// from the article pages, using a bounded worker pool. Extraction
// failures leave the summary empty; relevance then falls back to the
// title alone. Scraped listing pages are the usual beneficiaries since
// they carry no description at all.
func EnrichSummaries(items []types.RawItem) {
	var wg sync.WaitGroup
	itemChan := make(chan int, len(items))

	for w := 0; w < enrichWorkers; w++ {
		go func() {
			for idx := range itemChan {
				if err := enrich(&items[idx]); err != nil {
					log.Printf("summary extraction failed for %s: %v", items[idx].URL, err)
				}
				wg.Done()
			}
		}()
	}

	queued := 0
	for i := range items {
		if items[i].Summary != "" || items[i].URL == "" {
			continue
		}
		wg.Add(1)
		itemChan <- i
		queued++
	}

	wg.Wait()
	close(itemChan)

	if queued > 0 {
		log.Printf("summary enrichment attempted for %d item(s)", queued)
	}
}

// Enriched wraps an adapter so its fetched items pass through summary
// extraction before the pipeline gates them.
func Enriched(inner Adapter) Adapter {
	return enrichedAdapter{inner: inner}
}

type enrichedAdapter struct {
	inner Adapter
}

func (e enrichedAdapter) Profile() Profile { return e.inner.Profile() }

func (e enrichedAdapter) Fetch(ctx context.Context) ([]types.RawItem, error) {
	items, err := e.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	EnrichSummaries(items)
	return items, nil
}

func enrich(item *types.RawItem) error {
	article, err := readability.FromURL(item.URL, enrichTimeout)
	if err != nil {
		return err
	}

	text := article.TextContent
	if runes := []rune(text); len(runes) > maxSummaryRune {
		text = string(runes[:maxSummaryRune])
	}
	item.Summary = text
	return nil
}
