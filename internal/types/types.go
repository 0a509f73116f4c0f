package types

// JobPosting is one collected job advertisement for a company.
type JobPosting struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Review is one collected employee review.
type Review struct {
	Title string `json:"title"`
	Text  string `json:"review_text"`
}

// EvidenceRecord is one raw evidence observation in an assessment input
// document, before validation into the engine's evidence type.
type EvidenceRecord struct {
	Source        string            `json:"source"`
	RawScore      float64           `json:"raw_score"`
	Confidence    float64           `json:"confidence"`
	EvidenceCount int               `json:"evidence_count"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// AssessmentInput is the full input document for one scoring run,
// assembled upstream by the collection layer.
type AssessmentInput struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name,omitempty"`
	Ticker      string `json:"ticker,omitempty"`
	Sector      string `json:"sector"`

	// MarketCapPercentile must be in [0,1] when set. If absent and
	// MarketCapUSD is present, the engine derives the percentile from
	// the market-cap bands.
	MarketCapPercentile *float64 `json:"market_cap_percentile,omitempty"`
	MarketCapUSD        *float64 `json:"market_cap_usd,omitempty"`

	// HRBase overrides the sector-calibrated baseline when set.
	HRBase *float64 `json:"hr_base,omitempty"`

	// Alignment and Timing default to 1.0 when not separately assessed.
	Alignment *float64 `json:"alignment,omitempty"`
	Timing    *float64 `json:"timing,omitempty"`

	Evidence    []EvidenceRecord `json:"evidence"`
	JobPostings []JobPosting     `json:"job_postings,omitempty"`
	Reviews     []Review         `json:"reviews,omitempty"`
}
