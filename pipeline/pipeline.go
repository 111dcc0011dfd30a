// Package pipeline orchestrates the full run: adapters, normalization,
// novelty check, relevance and exclusion gates, classification,
// deduplication, ranking.
package pipeline

import (
	"context"
	"log"
	"sync"
	"time"

	"edmwatch/classify"
	"edmwatch/config"
	"edmwatch/deduplication"
	"edmwatch/normalize"
	"edmwatch/rank"
	"edmwatch/relevance"
	"edmwatch/sources"
	"edmwatch/types"
)

// NoveltyChecker answers whether a URL was surfaced in a previous run.
type NoveltyChecker interface {
	Contains(url string) bool
}

// FetchResult records one adapter's contribution to a run. A non-nil Err
// means the adapter produced nothing; the run continues regardless.
type FetchResult struct {
	Adapter  string
	Fetched  int
	Accepted int
	Err      error
}

// RunReport summarizes a completed run.
type RunReport struct {
	Items   []types.Item
	Results []FetchResult
	RunDate time.Time
}

// Pipeline wires the pure stages around a set of source adapters.
type Pipeline struct {
	rules      config.Rules
	gate       *relevance.Gate
	classifier *classify.Classifier
	adapters   []sources.Adapter
	seen       NoveltyChecker
	now        func() time.Time
}

// New constructs a pipeline. seen may be nil when no cross-run state
// exists yet.
func New(rules config.Rules, adapters []sources.Adapter, seen NoveltyChecker) *Pipeline {
	return &Pipeline{
		rules:      rules,
		gate:       relevance.NewGate(rules),
		classifier: classify.New(rules),
		adapters:   adapters,
		seen:       seen,
		now:        time.Now,
	}
}

// Run invokes every adapter sequentially and returns the ranked batch.
// Adapter failures are captured in the report, never propagated.
func (p *Pipeline) Run(ctx context.Context) RunReport {
	runDate := p.now()
	var all []types.Item
	results := make([]FetchResult, 0, len(p.adapters))

	for _, adapter := range p.adapters {
		result := p.runAdapter(ctx, adapter, runDate, &all)
		results = append(results, result)
	}

	return p.finish(all, results, runDate)
}

// RunParallel fetches all adapters concurrently. The stages themselves
// are pure, so the only shared state is the accumulator, guarded here.
// Batch order (and therefore dedup tie-breaks) still follows adapter
// registration order, not completion order.
func (p *Pipeline) RunParallel(ctx context.Context) RunReport {
	runDate := p.now()

	batches := make([][]types.Item, len(p.adapters))
	results := make([]FetchResult, len(p.adapters))

	var wg sync.WaitGroup
	for i, adapter := range p.adapters {
		wg.Add(1)
		go func(i int, adapter sources.Adapter) {
			defer wg.Done()
			var batch []types.Item
			results[i] = p.runAdapter(ctx, adapter, runDate, &batch)
			batches[i] = batch
		}(i, adapter)
	}
	wg.Wait()

	var all []types.Item
	for _, batch := range batches {
		all = append(all, batch...)
	}
	return p.finish(all, results, runDate)
}

func (p *Pipeline) finish(all []types.Item, results []FetchResult, runDate time.Time) RunReport {
	unique := deduplication.Dedupe(all, p.rules.FingerprintLength)
	rank.Sort(unique)

	if len(unique) == 0 {
		// A quiet day is possible but an empty run usually means an
		// upstream or filter configuration problem.
		log.Printf("WARNING: zero items produced across all %d adapters", len(results))
	}

	return RunReport{Items: unique, Results: results, RunDate: runDate}
}

func (p *Pipeline) runAdapter(ctx context.Context, adapter sources.Adapter, runDate time.Time, out *[]types.Item) FetchResult {
	profile := adapter.Profile()

	raw, err := adapter.Fetch(ctx)
	if err != nil {
		log.Printf("adapter %s failed: %v", profile.Name, err)
		return FetchResult{Adapter: profile.Name, Err: err}
	}

	accepted := 0
	for _, item := range raw {
		if item.URL == "" {
			continue
		}
		// Previously surfaced items are suppressed before any filter or
		// classification work happens.
		if p.seen != nil && p.seen.Contains(item.URL) {
			continue
		}
		if classified, ok := p.process(profile, item, runDate); ok {
			*out = append(*out, classified)
			accepted++
		}
	}

	return FetchResult{Adapter: profile.Name, Fetched: len(raw), Accepted: accepted}
}

// process runs one raw item through normalize, gates, and classify.
// The boolean is false when any gate dropped the item.
func (p *Pipeline) process(profile sources.Profile, raw types.RawItem, runDate time.Time) (types.Item, bool) {
	// The "Headline - Publisher" split applies only when the adapter did
	// not name its own source: feed and scrape titles keep their " - "
	// tails, which are often content (staff letter subjects, order names).
	var title, source string
	if raw.SourceHint != "" {
		title = normalize.CollapseWhitespace(normalize.StripHTML(raw.Title))
		source = raw.SourceHint
	} else {
		title = normalize.CleanTitle(raw.Title)
		source = normalize.ExtractSource(raw.Title)
	}

	if p.gate.JunkTitle(title) {
		return types.Item{}, false
	}
	// Exclusion short-circuits before relevance: a technically on-topic
	// item from an untrusted syndicator is still dropped.
	if p.gate.Excluded(raw.URL, title, source) {
		return types.Item{}, false
	}

	searchText := title
	if raw.Summary != "" {
		searchText = title + " " + normalize.CollapseWhitespace(normalize.StripHTML(raw.Summary))
	}
	switch profile.Mode {
	case sources.ModeStrict:
		if !p.gate.StrictlyRelevant(searchText) {
			return types.Item{}, false
		}
	case sources.ModeBroad:
		if !p.gate.BroadlyRelevant(searchText) {
			return types.Item{}, false
		}
	}

	baseCategory := profile.BaseCategory
	baseTier := profile.BaseTier
	needsPrimary := profile.NeedsPrimary

	if profile.RouteByURL {
		switch {
		case p.classifier.IsGovURL(raw.URL):
			baseCategory = types.CategoryFederal
			baseTier = types.TierGovernment
			needsPrimary = false
		case p.gate.ApprovedNews(source):
			baseCategory = types.CategoryNews
			baseTier = types.TierNews
			needsPrimary = true
		default:
			// Neither government nor an approved publisher.
			return types.Item{}, false
		}
	}

	item := p.classifier.Classify(classify.Input{
		Title:        title,
		Source:       source,
		URL:          raw.URL,
		PublishedAt:  raw.PublishedAt,
		BaseCategory: baseCategory,
		BaseTier:     baseTier,
		State:        profile.State,
		NeedsPrimary: needsPrimary,
	}, runDate)

	return item, true
}
