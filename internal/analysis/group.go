package analysis

import "github.com/user/seo-monitor/internal/entity"

// GroupURLsByCanonical maps every record to the group of its canonical URL.
// Groups are returned in the order their canonical URL was first seen.
// Non-canonical records are listed as variants; every record, canonical or
// not, adds its clicks and impressions to the group totals.
func (e *Engine) GroupURLsByCanonical(records []entity.URLRecord) []entity.URLVariantGroup {
	groups := make([]entity.URLVariantGroup, 0)
	index := make(map[string]int)

	for _, rec := range records {
		analysis := e.AnalyzeURL(rec.URL)

		i, ok := index[analysis.CanonicalURL]
		if !ok {
			groups = append(groups, entity.URLVariantGroup{
				CanonicalURL:  analysis.CanonicalURL,
				CanonicalPath: e.ExtractPath(analysis.CanonicalURL),
				Language:      analysis.Language,
				Variants:      []entity.URLVariant{},
			})
			i = len(groups) - 1
			index[analysis.CanonicalURL] = i
		}
		group := &groups[i]

		if !analysis.IsCanonical {
			variant := entity.URLVariant{
				URL:         rec.URL,
				Clicks:      copyInt(rec.Clicks),
				Impressions: copyInt(rec.Impressions),
			}
			// Unparseable URLs have no variant types and keep an empty type.
			if len(analysis.VariantTypes) > 0 {
				variant.Type = analysis.VariantTypes[0]
			}
			group.Variants = append(group.Variants, variant)
		}

		group.TotalClicks += valueOrZero(rec.Clicks)
		group.TotalImpressions += valueOrZero(rec.Impressions)
	}

	return groups
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
