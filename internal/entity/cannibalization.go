package entity

// Severity ranks how directly pages compete for a query.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities for sorting, high first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// QueryPage is a page ranking for a query, as reported by the search console.
type QueryPage struct {
	URL         string  `json:"url"`
	Position    float64 `json:"position"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
}

// QueryRecord is a search query with every page that ranks for it.
type QueryRecord struct {
	Query string      `json:"query"`
	Pages []QueryPage `json:"pages"`
}

// CompetingPage is a top page taking part in a cannibalization issue.
type CompetingPage struct {
	URL         string  `json:"url"`
	Path        string  `json:"path"`
	Position    float64 `json:"position"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
}

// CannibalizationIssue reports a query for which several pages compete.
type CannibalizationIssue struct {
	Query          string          `json:"query"`
	Pages          []CompetingPage `json:"pages"`
	Severity       Severity        `json:"severity"`
	Recommendation string          `json:"recommendation"`
}

// TotalImpressions sums impressions over the competing pages.
func (i CannibalizationIssue) TotalImpressions() int {
	total := 0
	for _, p := range i.Pages {
		total += p.Impressions
	}
	return total
}
