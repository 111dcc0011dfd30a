package config

// StatePattern pairs a full state name with its postal code.
type StatePattern struct {
	Name   string
	Abbrev string
}

// Rules bundles every keyword and denylist table the pipeline consults.
// The tables are injected at construction time so tests can substitute
// small fixture sets; nothing mutates a Rules value after creation.
type Rules struct {
	StrictKeywords         []string
	SecondaryKeywords      []string
	HighPriorityKeywords   []string
	EnforcementKeywords    []string
	CourtsKeywords         []string
	ExcludedDomains        []string
	ExcludedSourcePatterns []string
	ApprovedNewsSources    []string
	GovDomains             []string
	RegulatorNames         []string
	JunkTitlePatterns      []string
	StateNames             []StatePattern
	StateAbbrevs           []string
	FingerprintLength      int
	MinTitleLength         int
}

// DefaultRules returns the production ruleset.
func DefaultRules() Rules {
	return Rules{
		StrictKeywords:         strictKeywords,
		SecondaryKeywords:      secondaryKeywords,
		HighPriorityKeywords:   highPriorityKeywords,
		EnforcementKeywords:    enforcementKeywords,
		CourtsKeywords:         courtsKeywords,
		ExcludedDomains:        excludedDomains,
		ExcludedSourcePatterns: excludedSourcePatterns,
		ApprovedNewsSources:    approvedNewsSources,
		GovDomains:             govDomains,
		RegulatorNames:         regulatorNames,
		JunkTitlePatterns:      junkTitlePatterns,
		StateNames:             stateNames,
		StateAbbrevs:           stateAbbrevs,
		FingerprintLength:      FingerprintLength,
		MinTitleLength:         MinTitleLength,
	}
}
