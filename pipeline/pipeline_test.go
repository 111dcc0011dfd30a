package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"edmwatch/config"
	"edmwatch/deduplication"
	"edmwatch/sources"
	"edmwatch/types"
)

type stubAdapter struct {
	profile sources.Profile
	items   []types.RawItem
	err     error
}

func (s *stubAdapter) Profile() sources.Profile { return s.profile }

func (s *stubAdapter) Fetch(ctx context.Context) ([]types.RawItem, error) {
	return s.items, s.err
}

func testRules() config.Rules {
	rules := config.DefaultRules()
	rules.ExcludedDomains = append([]string{"somefarm.com"}, rules.ExcludedDomains...)
	return rules
}

func newsProfile() sources.Profile {
	return sources.Profile{
		Name: "Google News", Mode: sources.ModeStrict,
		BaseCategory: types.CategoryNews, BaseTier: types.TierNews,
		NeedsPrimary: true, RouteByURL: true,
	}
}

func TestEndToEndScenario(t *testing.T) {
	adapter := &stubAdapter{
		profile: newsProfile(),
		items: []types.RawItem{
			{Title: "CFTC Approves Kalshi Designation - Reuters", URL: "https://cftc.gov/press/123"},
			{Title: "CFTC Approves Kalshi Designation", URL: "https://somefarm.com/copy-456"},
		},
	}

	p := New(testRules(), []sources.Adapter{adapter}, nil)
	report := p.Run(context.Background())

	if len(report.Items) != 1 {
		t.Fatalf("expected exactly 1 output item, got %d: %+v", len(report.Items), report.Items)
	}

	got := report.Items[0]
	if got.URL != "https://cftc.gov/press/123" {
		t.Errorf("url = %q", got.URL)
	}
	if got.Title != "CFTC Approves Kalshi Designation" {
		t.Errorf("title = %q (source suffix should be stripped)", got.Title)
	}
	if got.Source != "Reuters" {
		t.Errorf("source = %q", got.Source)
	}
	if got.Tier != types.TierGovernment {
		t.Errorf("tier = %d; gov URL should route to tier 1", got.Tier)
	}
	if got.Category != types.CategoryFederal {
		t.Errorf("category = %q; no enforcement/courts keyword present", got.Category)
	}
	if got.Priority != types.PriorityHigh {
		t.Errorf("priority = %q; \"Designation\" is outcome language", got.Priority)
	}
	if got.NeedsPrimarySource {
		t.Errorf("gov-routed item should not need a primary source")
	}
	if got.ID == "" || got.Date == "" {
		t.Errorf("item missing id/date: %+v", got)
	}
}

// Titles from adapters that name their own source keep their " - " tails;
// the suffix split is reserved for news-search titles, where the tail is
// the publisher rather than content.
func TestSourceHintTitleKeepsSeparator(t *testing.T) {
	adapter := &stubAdapter{
		profile: sources.Profile{
			Name: "CFTC Staff Letter", Mode: sources.ModeBroad,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		},
		items: []types.RawItem{
			{
				Title:      "Staff Letter 25-14 - No-Action Relief for Kalshi Event Contracts",
				URL:        "https://cftc.gov/LawRegulation/CFTCStaffLetters/25-14",
				SourceHint: "CFTC Staff Letter",
			},
		},
	}

	p := New(testRules(), []sources.Adapter{adapter}, nil)
	report := p.Run(context.Background())

	if len(report.Items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(report.Items), report.Items)
	}

	got := report.Items[0]
	if got.Title != "Staff Letter 25-14 - No-Action Relief for Kalshi Event Contracts" {
		t.Errorf("title tail must survive for source-hinted adapters, got %q", got.Title)
	}
	if got.Source != "CFTC Staff Letter" {
		t.Errorf("source = %q", got.Source)
	}
}

func TestNoveltySuppression(t *testing.T) {
	adapter := &stubAdapter{
		profile: newsProfile(),
		items: []types.RawItem{
			// Seen URL: suppressed even though the title changed.
			{Title: "Kalshi Designation Upheld In Revised Headline - Reuters", URL: "https://CFTC.gov/x"},
		},
	}

	seen := deduplication.NewSeenSet("https://cftc.gov/x")
	p := New(testRules(), []sources.Adapter{adapter}, seen)
	report := p.Run(context.Background())

	if len(report.Items) != 0 {
		t.Fatalf("previously seen URL must never reappear, got %+v", report.Items)
	}
}

func TestIntraBatchDedupAcrossAdapters(t *testing.T) {
	first := &stubAdapter{
		profile: sources.Profile{
			Name: "CFTC Press Release", Mode: sources.ModeBroad,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		},
		items: []types.RawItem{
			{Title: "CFTC Approves Kalshi Designation", URL: "https://cftc.gov/press/123"},
		},
	}
	second := &stubAdapter{
		profile: newsProfile(),
		items: []types.RawItem{
			{Title: "CFTC Approves Kalshi Designation - Reuters", URL: "https://reuters.com/markets/777"},
		},
	}

	p := New(testRules(), []sources.Adapter{first, second}, nil)
	report := p.Run(context.Background())

	if len(report.Items) != 1 {
		t.Fatalf("fingerprint duplicates must collapse to one item, got %d", len(report.Items))
	}
	if report.Items[0].URL != "https://cftc.gov/press/123" {
		t.Fatalf("earlier adapter must win the tie-break, got %q", report.Items[0].URL)
	}
}

func TestAdapterFailureIsIsolated(t *testing.T) {
	failing := &stubAdapter{
		profile: sources.Profile{Name: "NFA", Mode: sources.ModeBroad, BaseCategory: types.CategoryFederal, BaseTier: 1},
		err:     errors.New("connection refused"),
	}
	working := &stubAdapter{
		profile: sources.Profile{
			Name: "CFTC Order", Mode: sources.ModeBroad,
			BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
		},
		items: []types.RawItem{
			{Title: "Order of Designation: Kalshi Event Contracts", URL: "https://cftc.gov/orders/1", PublishedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
		},
	}

	p := New(testRules(), []sources.Adapter{failing, working}, nil)
	report := p.Run(context.Background())

	if len(report.Items) != 1 {
		t.Fatalf("failing adapter must not block others, got %d items", len(report.Items))
	}
	if report.Results[0].Err == nil {
		t.Fatalf("failure should be recorded in the fetch results")
	}
	if report.Results[1].Err != nil {
		t.Fatalf("working adapter should not report an error")
	}
}

func TestNonApprovedNewsDropped(t *testing.T) {
	adapter := &stubAdapter{
		profile: newsProfile(),
		items: []types.RawItem{
			{Title: "Kalshi prediction market expands - Random Crypto Blog", URL: "https://cryptoblog.example/kalshi"},
		},
	}

	p := New(testRules(), []sources.Adapter{adapter}, nil)
	report := p.Run(context.Background())

	if len(report.Items) != 0 {
		t.Fatalf("non-approved, non-gov publisher must be dropped, got %+v", report.Items)
	}
}

func TestRunParallelMatchesSequentialOrder(t *testing.T) {
	adapters := []sources.Adapter{
		&stubAdapter{
			profile: sources.Profile{
				Name: "CFTC Press Release", Mode: sources.ModeBroad,
				BaseCategory: types.CategoryFederal, BaseTier: types.TierGovernment,
			},
			items: []types.RawItem{
				{Title: "CFTC Approves Kalshi Designation", URL: "https://cftc.gov/press/123"},
			},
		},
		&stubAdapter{
			profile: newsProfile(),
			items: []types.RawItem{
				{Title: "CFTC Approves Kalshi Designation - Reuters", URL: "https://reuters.com/markets/777"},
			},
		},
	}

	p := New(testRules(), adapters, nil)
	report := p.RunParallel(context.Background())

	if len(report.Items) != 1 {
		t.Fatalf("parallel run must dedup identically, got %d items", len(report.Items))
	}
	if report.Items[0].URL != "https://cftc.gov/press/123" {
		t.Fatalf("registration order must still break ties, got %q", report.Items[0].URL)
	}
}
