package entity

import "time"

// HreflangLink is an alternate-language link declared by a page.
type HreflangLink struct {
	Lang string `json:"lang"`
	Href string `json:"href"`
}

// FetchedPage is the raw result of loading a page for an audit.
type FetchedPage struct {
	URL            string
	FinalURL       string
	HTML           string
	HTTPStatusCode int
	ResponseTimeMS int
	FetchedAt      time.Time
}

// PageMeta holds the canonical and alternate declarations found in a page.
type PageMeta struct {
	Title          string         `json:"title"`
	CanonicalURL   string         `json:"canonical_url,omitempty"`
	CanonicalCount int            `json:"canonical_count"`
	Alternates     []HreflangLink `json:"alternates,omitempty"`
}

// PageAudit compares what a page declares against what the engine computes.
type PageAudit struct {
	URL                string         `json:"url"`
	Analysis           URLAnalysis    `json:"analysis"`
	Meta               PageMeta       `json:"meta"`
	HTTPStatusCode     int            `json:"http_status_code"`
	ResponseTimeMS     int            `json:"response_time_ms"`
	MissingCanonical   bool           `json:"missing_canonical"`
	MultipleCanonicals bool           `json:"multiple_canonicals"`
	CanonicalMismatch  bool           `json:"canonical_mismatch"`
	ExpectedAlternates []HreflangLink `json:"expected_alternates,omitempty"`
	MissingAlternates  []HreflangLink `json:"missing_alternates,omitempty"`
	Findings           []string       `json:"findings"`
	AuditedAt          time.Time      `json:"audited_at"`
}
