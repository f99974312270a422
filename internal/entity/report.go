package entity

import "time"

// ReportKind identifies the payload of a stored report.
type ReportKind string

const (
	ReportKindGrouping        ReportKind = "grouping"
	ReportKindCannibalization ReportKind = "cannibalization"
)

// Trend is the direction of a metric between two periods.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// VariantSummary aggregates a grouping run.
type VariantSummary struct {
	Groups             int                 `json:"groups"`
	Variants           int                 `json:"variants"`
	GroupsWithVariants int                 `json:"groups_with_variants"`
	ByType             map[VariantType]int `json:"by_type"`
	TotalClicks        int                 `json:"total_clicks"`
	TotalImpressions   int                 `json:"total_impressions"`
}

// GroupingReport is a persisted result of grouping a URL inventory.
type GroupingReport struct {
	ID        string            `json:"id"`
	Kind      ReportKind        `json:"kind"`
	Domain    string            `json:"domain"`
	CreatedAt time.Time         `json:"created_at"`
	Groups    []URLVariantGroup `json:"groups"`
	Summary   VariantSummary    `json:"summary"`
}

// CannibalizationReport is a persisted result of a cannibalization run.
type CannibalizationReport struct {
	ID             string                 `json:"id"`
	Kind           ReportKind             `json:"kind"`
	Domain         string                 `json:"domain"`
	CreatedAt      time.Time              `json:"created_at"`
	Queries        int                    `json:"queries"`
	Issues         []CannibalizationIssue `json:"issues"`
	SeverityCounts map[Severity]int       `json:"severity_counts"`
}

// StoredReport is the envelope the report stores read and write. Exactly one
// of Grouping and Cannibalization is set, matching Kind.
type StoredReport struct {
	ID              string                 `json:"id"`
	Kind            ReportKind             `json:"kind"`
	CreatedAt       time.Time              `json:"created_at"`
	Grouping        *GroupingReport        `json:"grouping,omitempty"`
	Cannibalization *CannibalizationReport `json:"cannibalization,omitempty"`
}
