package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"edmwatch/normalize"
	"edmwatch/types"
)

const federalRegisterAPI = "https://www.federalregister.gov/api/v1/documents.json"

// federalRegisterTerms are the search queries run against the API. They
// are deliberately narrow; the strict relevance gate catches the rest.
var federalRegisterTerms = []string{
	`"event contract"`,
	`"prediction market"`,
	"Kalshi",
	"Polymarket",
	`"designated contract market"`,
}

// FederalRegisterAdapter searches the Federal Register documents API over
// a trailing window.
type FederalRegisterAdapter struct {
	client   *Client
	terms    []string
	daysBack int
	apiURL   string
	now      func() time.Time
}

// NewFederalRegisterAdapter constructs the adapter with the default terms.
func NewFederalRegisterAdapter(client *Client, daysBack int) *FederalRegisterAdapter {
	return &FederalRegisterAdapter{
		client:   client,
		terms:    federalRegisterTerms,
		daysBack: daysBack,
		apiURL:   federalRegisterAPI,
		now:      time.Now,
	}
}

// Profile implements Adapter.
func (a *FederalRegisterAdapter) Profile() Profile {
	return Profile{
		Name:         "Federal Register",
		Mode:         ModeStrict,
		BaseCategory: types.CategoryFederal,
		BaseTier:     types.TierGovernment,
	}
}

type federalRegisterResponse struct {
	Results []struct {
		Title           string `json:"title"`
		HTMLURL         string `json:"html_url"`
		PublicationDate string `json:"publication_date"`
	} `json:"results"`
}

// Fetch runs each search term and merges the document lists. A failed
// term is skipped; the adapter only errors when every term failed.
func (a *FederalRegisterAdapter) Fetch(ctx context.Context) ([]types.RawItem, error) {
	end := a.now()
	start := end.AddDate(0, 0, -a.daysBack)

	var items []types.RawItem
	var lastErr error
	failures := 0

	for _, term := range a.terms {
		docs, err := a.search(ctx, term, start, end)
		if err != nil {
			failures++
			lastErr = err
			continue
		}
		items = append(items, docs...)
	}

	if failures == len(a.terms) && lastErr != nil {
		return nil, fmt.Errorf("all federal register queries failed: %w", lastErr)
	}
	return items, nil
}

func (a *FederalRegisterAdapter) search(ctx context.Context, term string, start, end time.Time) ([]types.RawItem, error) {
	params := url.Values{}
	params.Set("conditions[term]", term)
	params.Set("conditions[publication_date][gte]", start.Format(normalize.DateLayout))
	params.Set("conditions[publication_date][lte]", end.Format(normalize.DateLayout))
	params.Set("per_page", "20")
	params.Set("order", "newest")

	body, err := a.client.Get(ctx, a.apiURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp federalRegisterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode federal register response: %w", err)
	}

	items := make([]types.RawItem, 0, len(resp.Results))
	for _, doc := range resp.Results {
		if doc.HTMLURL == "" {
			continue
		}
		var publishedAt time.Time
		if doc.PublicationDate != "" {
			if t, err := time.Parse(normalize.DateLayout, doc.PublicationDate); err == nil {
				publishedAt = t
			}
		}
		items = append(items, types.RawItem{
			Title:       doc.Title,
			URL:         doc.HTMLURL,
			SourceHint:  "Federal Register",
			PublishedAt: publishedAt,
		})
	}
	return items, nil
}
