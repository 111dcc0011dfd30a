package sources

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"edmwatch/types"
)

// minLinkText filters out short navigation links on scraped pages.
const minLinkText = 20

// ScrapeAdapter extracts candidate items from the anchor links of a
// press-release listing page. Scraped pages rarely expose structured
// dates, so items carry a zero PublishedAt and fall back to the run date.
type ScrapeAdapter struct {
	client  *Client
	profile Profile
	pageURL string
	baseURL string
	// hrefContains, when non-empty, keeps only links whose href matches;
	// listing pages mix article links with site chrome.
	hrefContains string
}

// NewScrapeAdapter constructs a scrape adapter. baseURL is prefixed onto
// relative hrefs.
func NewScrapeAdapter(client *Client, profile Profile, pageURL, baseURL, hrefContains string) *ScrapeAdapter {
	return &ScrapeAdapter{
		client:       client,
		profile:      profile,
		pageURL:      pageURL,
		baseURL:      baseURL,
		hrefContains: hrefContains,
	}
}

// Profile implements Adapter.
func (a *ScrapeAdapter) Profile() Profile { return a.profile }

// Fetch pulls the listing page and yields one raw item per qualifying link.
func (a *ScrapeAdapter) Fetch(ctx context.Context) ([]types.RawItem, error) {
	body, err := a.client.Get(ctx, a.pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	var items []types.RawItem
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		title := strings.TrimSpace(sel.Text())

		if len(title) < minLinkText {
			return
		}
		if a.hrefContains != "" && !strings.Contains(strings.ToLower(href), strings.ToLower(a.hrefContains)) {
			return
		}

		items = append(items, types.RawItem{
			Title:      title,
			URL:        a.resolve(href),
			SourceHint: a.profile.Name,
		})
	})

	return items, nil
}

func (a *ScrapeAdapter) resolve(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return a.baseURL + href
	}
	return a.baseURL + "/" + href
}

// DefaultScrapeAdapters returns the production scrape set: CFTC press
// pages, state gaming commissions, and prediction-market company blogs.
func DefaultScrapeAdapters(client *Client) []Adapter {
	return []Adapter{
		NewScrapeAdapter(client, Profile{
			Name: "CFTC Press Release", Mode: ModeBroad,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		}, "https://www.cftc.gov/PressRoom/PressReleases", "https://www.cftc.gov", "/PressRoom/PressReleases/"),
		NewScrapeAdapter(client, Profile{
			Name: "CFTC Speech/Testimony", Mode: ModeBroad,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		}, "https://www.cftc.gov/PressRoom/SpeechesTestimony", "https://www.cftc.gov", "/PressRoom/SpeechesTestimony/"),
		NewScrapeAdapter(client, Profile{
			Name: "CFTC Staff Letter", Mode: ModeBroad,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		}, "https://www.cftc.gov/LawRegulation/CFTCStaffLetters/index.htm", "https://www.cftc.gov", "letter"),
		NewScrapeAdapter(client, Profile{
			Name: "NV Gaming Control Board", Mode: ModeStrict,
			BaseCategory: types.CategoryState, BaseTier: types.TierGovernment, State: "NV",
		}, "https://gaming.nv.gov/index.aspx?page=149", "https://gaming.nv.gov", ""),
		NewScrapeAdapter(client, Profile{
			Name: "MA Gaming Commission", Mode: ModeStrict,
			BaseCategory: types.CategoryState, BaseTier: types.TierGovernment, State: "MA",
		}, "https://massgaming.com/news-events/", "https://massgaming.com", ""),
		NewScrapeAdapter(client, Profile{
			Name: "PA Gaming Control Board", Mode: ModeStrict,
			BaseCategory: types.CategoryState, BaseTier: types.TierGovernment, State: "PA",
		}, "https://gamingcontrolboard.pa.gov/news-and-transparency/press-release", "https://gamingcontrolboard.pa.gov", ""),
		NewScrapeAdapter(client, Profile{
			Name: "NY Attorney General", Mode: ModeStrict,
			BaseCategory: types.CategoryState, BaseTier: types.TierGovernment, State: "NY",
		}, "https://ag.ny.gov/press-releases", "https://ag.ny.gov", ""),
		NewScrapeAdapter(client, Profile{
			Name: "Kalshi", Mode: ModeStrict,
			BaseCategory: types.CategoryParticipants, BaseTier: types.TierTrade,
		}, "https://kalshi.com/blog", "https://kalshi.com", "/blog/"),
		NewScrapeAdapter(client, Profile{
			Name: "Polymarket", Mode: ModeStrict,
			BaseCategory: types.CategoryParticipants, BaseTier: types.TierTrade,
		}, "https://polymarket.com/blog", "https://polymarket.com", "/blog/"),
	}
}
