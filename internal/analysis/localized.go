package analysis

import (
	"strings"

	"github.com/user/seo-monitor/internal/entity"
)

// LocalizedURL returns the canonical URL of a page in lang. The default
// language has no prefix; an empty slug is the home page.
func (e *Engine) LocalizedURL(slugs entity.LocalizedSlugs, lang entity.Language) string {
	var b strings.Builder
	b.WriteString(e.origin)
	b.WriteByte('/')
	if lang != e.site.DefaultLanguage {
		b.WriteString(string(lang))
		b.WriteByte('/')
	}
	if slug := strings.Trim(slugs.Slug(lang), "/"); slug != "" {
		b.WriteString(slug)
		b.WriteByte('/')
	}
	return e.Normalize(b.String())
}

// Alternates lists the expected hreflang alternates of a page, default
// language first.
func (e *Engine) Alternates(slugs entity.LocalizedSlugs) []entity.HreflangLink {
	links := []entity.HreflangLink{{
		Lang: string(e.site.DefaultLanguage),
		Href: e.LocalizedURL(slugs, e.site.DefaultLanguage),
	}}
	for _, lang := range e.site.Languages {
		if _, ok := e.languages[string(lang)]; !ok {
			continue
		}
		links = append(links, entity.HreflangLink{
			Lang: string(lang),
			Href: e.LocalizedURL(slugs, lang),
		})
	}
	return links
}
