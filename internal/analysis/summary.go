package analysis

import "github.com/user/seo-monitor/internal/entity"

// Summarize counts groups, variants and traffic across a grouping result.
func Summarize(groups []entity.URLVariantGroup) entity.VariantSummary {
	summary := entity.VariantSummary{
		Groups: len(groups),
		ByType: make(map[entity.VariantType]int),
	}
	for _, g := range groups {
		if len(g.Variants) > 0 {
			summary.GroupsWithVariants++
		}
		summary.Variants += len(g.Variants)
		for _, v := range g.Variants {
			summary.ByType[v.Type]++
		}
		summary.TotalClicks += g.TotalClicks
		summary.TotalImpressions += g.TotalImpressions
	}
	return summary
}

// CountSeverities tallies issues per severity.
func CountSeverities(issues []entity.CannibalizationIssue) map[entity.Severity]int {
	counts := map[entity.Severity]int{
		entity.SeverityHigh:   0,
		entity.SeverityMedium: 0,
		entity.SeverityLow:    0,
	}
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return counts
}
