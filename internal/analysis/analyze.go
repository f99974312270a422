package analysis

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/user/seo-monitor/internal/entity"
)

const invalidURLIssue = "Invalid URL format"

// variantCheck detects one kind of deviation on a parsed URL.
type variantCheck struct {
	kind   entity.VariantType
	detect func(e *Engine, u *url.URL) (issue string, found bool)
}

// variantChecks run in this order. The first detected type becomes the
// primary type of a variant when grouping.
var variantChecks = []variantCheck{
	{entity.VariantProtocol, func(_ *Engine, u *url.URL) (string, bool) {
		if strings.EqualFold(u.Scheme, "https") {
			return "", false
		}
		return fmt.Sprintf("Uses %s instead of https", strings.ToLower(u.Scheme)), true
	}},
	{entity.VariantWWW, func(e *Engine, u *url.URL) (string, bool) {
		return "Missing www prefix", strings.EqualFold(u.Hostname(), e.domain)
	}},
	{entity.VariantCase, func(_ *Engine, u *url.URL) (string, bool) {
		p := u.EscapedPath()
		return "Path contains uppercase characters", strings.ToLower(p) != p
	}},
	{entity.VariantQueryParam, func(_ *Engine, u *url.URL) (string, bool) {
		if u.RawQuery == "" {
			return "", false
		}
		return "Has query parameters: ?" + u.RawQuery, true
	}},
	{entity.VariantFragment, func(_ *Engine, u *url.URL) (string, bool) {
		if u.Fragment == "" {
			return "", false
		}
		return "Has fragment: #" + u.EscapedFragment(), true
	}},
	{entity.VariantIndexHTML, func(_ *Engine, u *url.URL) (string, bool) {
		return "Points to an index.html file", indexPagePattern.MatchString(u.EscapedPath())
	}},
	{entity.VariantTrailingSlash, func(_ *Engine, u *url.URL) (string, bool) {
		p := u.EscapedPath()
		if p == "" {
			return "", false
		}
		return "Missing trailing slash", !hasExtension(p) && !strings.HasSuffix(p, "/")
	}},
	{entity.VariantLegacyCMS, func(_ *Engine, u *url.URL) (string, bool) {
		return "Legacy CMS URL", strings.Contains(u.EscapedPath(), "/cms/")
	}},
}

// AnalyzeURL normalizes raw and reports every way it deviates from its
// canonical form.
func (e *Engine) AnalyzeURL(raw string) entity.URLAnalysis {
	normalized := e.Normalize(raw)
	analysis := entity.URLAnalysis{
		Original:     raw,
		Normalized:   normalized,
		Path:         e.ExtractPath(normalized),
		Language:     e.ExtractLanguage(raw),
		VariantTypes: []entity.VariantType{},
		CanonicalURL: normalized,
		Issues:       []string{},
	}

	u, ok := e.parse(raw)
	if !ok {
		analysis.Issues = append(analysis.Issues, invalidURLIssue)
		return analysis
	}

	for _, check := range variantChecks {
		if issue, found := check.detect(e, u); found {
			analysis.VariantTypes = append(analysis.VariantTypes, check.kind)
			analysis.Issues = append(analysis.Issues, issue)
		}
	}
	if len(analysis.VariantTypes) == 0 {
		analysis.VariantTypes = append(analysis.VariantTypes, entity.VariantCanonical)
	}
	analysis.IsCanonical = len(analysis.VariantTypes) == 1 && analysis.VariantTypes[0] == entity.VariantCanonical

	return analysis
}
