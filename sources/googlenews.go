package sources

import (
	"context"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"edmwatch/config"
	"edmwatch/types"
)

// newsSearchQueries are the standing Google News searches. Each query is
// narrow on purpose; the strict relevance gate and the approved-publisher
// allowlist do the rest of the filtering.
var newsSearchQueries = []string{
	"Kalshi CFTC",
	"Kalshi regulation court",
	"Polymarket CFTC regulation",
	"Polymarket lawsuit court",
	"prediction market CFTC regulation",
	"prediction market court ruling",
	"event contract CFTC",
	"CFTC event contract rule",
	"Coinbase prediction market",
	"Robinhood prediction market",
	"state attorney general prediction market",
	"gaming commission prediction market",
}

// NewsSearchAdapter pulls Google News RSS search results. Result titles
// arrive as "Headline - Publisher"; the normalizer splits them.
type NewsSearchAdapter struct {
	client   *Client
	queries  []string
	perQuery int
}

// NewNewsSearchAdapter constructs the adapter with the default queries.
func NewNewsSearchAdapter(client *Client) *NewsSearchAdapter {
	return &NewsSearchAdapter{
		client:   client,
		queries:  newsSearchQueries,
		perQuery: config.MaxNewsPerQuery,
	}
}

// Profile implements Adapter. RouteByURL sends government links to tier-1
// federal and keeps only approved publishers at tier 3.
func (a *NewsSearchAdapter) Profile() Profile {
	return Profile{
		Name:         "Google News",
		Mode:         ModeStrict,
		BaseCategory: types.CategoryNews,
		BaseTier:     types.TierNews,
		NeedsPrimary: true,
		RouteByURL:   true,
	}
}

// Fetch runs every standing query. Failed queries are skipped silently;
// news search is best-effort by design.
func (a *NewsSearchAdapter) Fetch(ctx context.Context) ([]types.RawItem, error) {
	var items []types.RawItem

	for _, query := range a.queries {
		feedURL := "https://news.google.com/rss/search?q=" + url.QueryEscape(query) + "&hl=en-US&gl=US&ceid=US:en"

		body, err := a.client.Get(ctx, feedURL)
		if err != nil {
			continue
		}
		feed, err := gofeed.NewParser().ParseString(string(body))
		if err != nil {
			continue
		}

		count := min(len(feed.Items), a.perQuery)
		for i := 0; i < count; i++ {
			entry := feed.Items[i]
			if entry.Link == "" {
				continue
			}

			var publishedAt time.Time
			if entry.PublishedParsed != nil {
				publishedAt = *entry.PublishedParsed
			} else if entry.UpdatedParsed != nil {
				publishedAt = *entry.UpdatedParsed
			}

			items = append(items, types.RawItem{
				Title:       entry.Title,
				URL:         entry.Link,
				Summary:     entry.Description,
				PublishedAt: publishedAt,
			})
		}
	}

	return items, nil
}
