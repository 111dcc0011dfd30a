package config

import "time"

// HTTP Fetch Constants
const (
	// RequestTimeout bounds every upstream HTTP request
	RequestTimeout = 30 * time.Second

	// FetchRetries is the number of attempts per request
	FetchRetries = 2

	// UserAgent sent on scrape requests; some .gov sites reject the default Go UA
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Pipeline Constants
const (
	// FederalRegisterDaysBack is the search window for the Federal Register API
	FederalRegisterDaysBack = 30

	// MaxFeedEntries caps how many entries are taken per feed
	MaxFeedEntries = 20

	// MaxNewsPerQuery caps entries per Google News search query
	MaxNewsPerQuery = 5

	// FingerprintLength is the normalized-title prefix used for fuzzy dedup
	FingerprintLength = 50

	// MinTitleLength rejects navigation fragments and junk link text
	MinTitleLength = 15
)

// Output Constants
const (
	// SeenURLsFile tracks URLs surfaced in previous runs
	SeenURLsFile = "seen_urls.txt"

	// OutputDraftCSV is the tabular export path
	OutputDraftCSV = "data_draft.csv"

	// OutputDraftJSON is the structured export path
	OutputDraftJSON = "data_draft.json"
)

// strictKeywords: a title MUST contain one of these to pass strict relevance.
var strictKeywords = []string{
	"prediction market", "prediction markets",
	"event contract", "event contracts",
	"kalshi", "polymarket", "forecastex", "nadex", "predictit",
	"designated contract market", "dcm",
	"binary option", "binary options",
	"election contract", "election contracts",
	"sports betting", "sports wagering", "sports wager",
	"event-based", "event based",
	"robinhood prediction", "coinbase prediction",
	"gemini titan", "xchange alpha",
}

// secondaryKeywords widen the strict set for broad relevance checks.
var secondaryKeywords = []string{
	"cftc", "commodity futures trading",
	"gaming commission", "gaming control",
	"gambling", "wagering",
}

// highPriorityKeywords mark outcome language that bumps priority to high.
var highPriorityKeywords = []string{
	"ruling", "ruled", "court order", "injunction", "restraining order",
	"enforcement", "cease and desist", "penalty", "fine", "settlement",
	"approved", "denied", "granted", "rejected", "blocked",
	"lawsuit", "litigation", "appeals court", "circuit court",
	"withdrawal", "withdrawn", "rescind", "rescinded", "vacated", "overturned",
	"designated", "designation", "license", "licensed", "registration",
	"banned", "prohibited", "illegal", "unlawful",
	"no-action", "no action letter", "staff letter",
	"amended order", "order of designation",
}

// enforcementKeywords take precedence over every other category signal.
var enforcementKeywords = []string{
	"enforcement", "cease and desist", "cease-and-desist", "penalty", "fine",
	"settlement", "violation", "enforcement action", "civil penalty",
	"consent order", "disciplinary", "sanction", "warning", "alert",
	"attorney general", "ag ", " ag,", "warns",
}

// courtsKeywords are checked after enforcement.
var courtsKeywords = []string{
	"court", "judge", "ruling", "ruled", "lawsuit", "litigation", "injunction",
	"restraining order", "appeal", "appeals court", "circuit court", "district court",
	"supreme court", "plaintiff", "defendant", "complaint filed", "motion",
	"preliminary injunction", "temporary restraining", "tro", "class action",
}

// excludedDomains drop items regardless of relevance: law-firm commentary,
// crypto aggregators, betting-odds sites, low-quality syndicators.
var excludedDomains = []string{
	"jdsupra.com", "lexology.com", "mondaq.com", "nationallawreview.com",
	"law.com", "lawfare", "law360",
	"seekingalpha.com", "patch.com", "triblive.com", "wesa.fm", "wpxi.com",
	"abc27.com", "boston25", "fox", "wgn", "wthr", "khou", "wfaa", "wcvb",
	"myheraldreview", "newsbreak.com", "aol.com",
	"financialcontent.com", "grafa", "bitget.com", "newsbtc",
	"actionnetwork.com", "sportsbettingdime.com", "legalsportsreport.com",
	"covers.com", "oddschecker.com", "vegasinsider.com",
	"medium.com", "substack.com",
}

// excludedSourcePatterns drop items by resolved publisher name.
var excludedSourcePatterns = []string{
	"Law360", "JD Supra", "Lexology", "Mondaq", "National Law Review",
	"Action Network", "Legal Sports Report", "Covers",
	"AOL", "Business Insider",
	"Bookies.com", "DeFi Rate", "iGamingToday",
}

// approvedNewsSources are the only tier-3 publishers accepted from news search.
var approvedNewsSources = []string{
	"reuters", "associated press", "ap news", "ap ",
	"bloomberg", "cnbc", "bbc", "npr", "guardian",
	"politico", "the hill", "axios", "washington post", "new york times",
	"wall street journal", "wsj", "financial times",
	"nbc news", "cbs news", "abc news", "cnn",
	"boston globe", "nevada independent",
}

// govDomains auto-upgrade an item to tier 1.
var govDomains = []string{
	".gov", "federalregister.gov", "cftc.gov", "sec.gov", "nfa.futures.org",
	"gaming.nv.gov", "gaming.ny.gov", "gamingcontrolboard.pa.gov",
}

// regulatorNames upgrade to tier 1 by resolved source name.
var regulatorNames = []string{
	"cftc", "sec", "federal register", "nfa",
	"gaming commission", "gaming control", "attorney general",
}

// junkTitlePatterns reject navigation text and mailto noise.
var junkTitlePatterns = []string{
	`^support@`, `^contact`, `^email`, `^subscribe`, `^newsletter`,
	`^read more`, `^learn more`, `^click here`, `^view all`, `^see all`,
	`^home$`, `^about$`, `^menu$`, `^search$`, `@.*\.org$`, `@.*\.com$`,
}

// stateNames lists full state names with their postal codes for state
// extraction. Order matters: the first name found in a title wins, so
// multi-state titles resolve the same way every run.
var stateNames = []StatePattern{
	{"nevada", "NV"}, {"massachusetts", "MA"}, {"new york", "NY"},
	{"new jersey", "NJ"}, {"california", "CA"}, {"texas", "TX"},
	{"pennsylvania", "PA"}, {"michigan", "MI"}, {"tennessee", "TN"},
	{"maryland", "MD"}, {"connecticut", "CT"}, {"florida", "FL"},
	{"illinois", "IL"}, {"arizona", "AZ"}, {"ohio", "OH"},
}

// stateAbbrevs is the restricted set matched as bare word-bounded tokens.
var stateAbbrevs = []string{
	"NV", "MA", "NY", "NJ", "CA", "TX", "PA", "MI", "TN", "MD", "CT", "FL", "IL", "AZ", "OH",
}
