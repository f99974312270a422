package analysis

import (
	"cmp"
	"math"
	"slices"

	"github.com/user/seo-monitor/internal/entity"
)

// MaxCompetingPosition is the worst search position that still counts as a
// top page.
const MaxCompetingPosition = 20

const (
	highSpread   = 3
	mediumSpread = 10
)

const (
	recommendHigh   = "Pages compete directly for this query. Consolidate the content or add canonical tags pointing to the preferred page."
	recommendMedium = "Review the content overlap and internal linking so one page is clearly preferred."
	recommendLow    = "Monitor the rankings. The overlap may be intentional."
)

// DetectCannibalization reports every query for which at least two pages
// rank at position MaxCompetingPosition or better. Issues are ordered by
// severity, then by total impressions descending; equal issues keep their
// input order.
func (e *Engine) DetectCannibalization(queries []entity.QueryRecord) []entity.CannibalizationIssue {
	issues := make([]entity.CannibalizationIssue, 0)

	for _, q := range queries {
		if len(q.Pages) < 2 {
			continue
		}

		top := make([]entity.CompetingPage, 0, len(q.Pages))
		for _, p := range q.Pages {
			if math.IsNaN(p.Position) || p.Position > MaxCompetingPosition {
				continue
			}
			top = append(top, entity.CompetingPage{
				URL:         p.URL,
				Path:        e.ExtractPath(p.URL),
				Position:    p.Position,
				Clicks:      p.Clicks,
				Impressions: p.Impressions,
			})
		}
		if len(top) < 2 {
			continue
		}

		severity, recommendation := classifySpread(positionSpread(top))
		issues = append(issues, entity.CannibalizationIssue{
			Query:          q.Query,
			Pages:          top,
			Severity:       severity,
			Recommendation: recommendation,
		})
	}

	slices.SortStableFunc(issues, func(a, b entity.CannibalizationIssue) int {
		if c := cmp.Compare(a.Severity.Rank(), b.Severity.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(b.TotalImpressions(), a.TotalImpressions())
	})

	return issues
}

func positionSpread(pages []entity.CompetingPage) float64 {
	lo, hi := pages[0].Position, pages[0].Position
	for _, p := range pages[1:] {
		lo = min(lo, p.Position)
		hi = max(hi, p.Position)
	}
	return hi - lo
}

func classifySpread(spread float64) (entity.Severity, string) {
	switch {
	case spread <= highSpread:
		return entity.SeverityHigh, recommendHigh
	case spread <= mediumSpread:
		return entity.SeverityMedium, recommendMedium
	default:
		return entity.SeverityLow, recommendLow
	}
}
