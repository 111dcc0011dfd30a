package sources

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"edmwatch/config"
	"edmwatch/types"
)

// FeedAdapter pulls one RSS/Atom feed.
type FeedAdapter struct {
	client     *Client
	profile    Profile
	feedURL    string
	maxEntries int
}

// NewFeedAdapter constructs a feed adapter with the default entry cap.
func NewFeedAdapter(client *Client, profile Profile, feedURL string) *FeedAdapter {
	return &FeedAdapter{
		client:     client,
		profile:    profile,
		feedURL:    feedURL,
		maxEntries: config.MaxFeedEntries,
	}
}

// Profile implements Adapter.
func (a *FeedAdapter) Profile() Profile { return a.profile }

// Fetch retrieves and parses the feed, returning entry metadata.
func (a *FeedAdapter) Fetch(ctx context.Context) ([]types.RawItem, error) {
	body, err := a.client.Get(ctx, a.feedURL)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, err
	}

	count := min(len(feed.Items), a.maxEntries)
	items := make([]types.RawItem, 0, count)

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

		summary := entry.Description
		if summary == "" {
			summary = entry.Content
		}

		items = append(items, types.RawItem{
			Title:       entry.Title,
			URL:         entry.Link,
			Summary:     summary,
			SourceHint:  a.profile.Name,
			PublishedAt: publishedAt,
		})
	}

	return items, nil
}

// DefaultFeedAdapters returns the production feed set: federal regulators
// and trade organizations that publish RSS.
func DefaultFeedAdapters(client *Client) []Adapter {
	return []Adapter{
		NewFeedAdapter(client, Profile{
			Name: "CFTC Order", Mode: ModeBroad,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		}, "https://www.cftc.gov/rss/cftcorders.xml"),
		NewFeedAdapter(client, Profile{
			Name: "SEC Press Release", Mode: ModeStrict,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		}, "https://www.sec.gov/news/pressreleases.rss"),
		NewFeedAdapter(client, Profile{
			Name: "SEC Statement", Mode: ModeStrict,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		}, "https://www.sec.gov/news/statements.rss"),
		NewFeedAdapter(client, Profile{
			Name: "SEC Litigation", Mode: ModeStrict,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		}, "https://www.sec.gov/rss/litigation/litreleases.xml"),
		NewFeedAdapter(client, Profile{
			Name: "NFA", Mode: ModeBroad,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		}, "https://www.nfa.futures.org/news/newsRss.asp"),
		NewFeedAdapter(client, Profile{
			Name: "American Gaming Association", Mode: ModeStrict,
			BaseCategory: types.CategoryTrade, BaseTier: types.TierTrade,
		}, "https://www.americangaming.org/feed/"),
	}
}
