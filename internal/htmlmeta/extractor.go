// Package htmlmeta reads the canonical and alternate-language declarations
// of an HTML page.
package htmlmeta

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/pkg/utils"
)

// Extract parses htmlContent and returns its title, the first non-empty
// canonical link and every hreflang alternate. Relative hrefs are resolved
// against pageURL; hrefs that cannot be resolved are kept as written.
func Extract(pageURL, htmlContent string) (entity.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return entity.PageMeta{}, err
	}

	meta := entity.PageMeta{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	canonicals := doc.Find(`link[rel="canonical"]`)
	meta.CanonicalCount = canonicals.Length()
	canonicals.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return true
		}
		meta.CanonicalURL = resolve(pageURL, href)
		return false
	})

	doc.Find(`link[rel="alternate"][hreflang]`).Each(func(_ int, s *goquery.Selection) {
		lang := strings.ToLower(strings.TrimSpace(s.AttrOr("hreflang", "")))
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if lang == "" || href == "" {
			return
		}
		meta.Alternates = append(meta.Alternates, entity.HreflangLink{
			Lang: lang,
			Href: resolve(pageURL, href),
		})
	})

	return meta, nil
}

func resolve(pageURL, href string) string {
	abs, err := utils.ResolveAgainst(pageURL, href)
	if err != nil {
		return href
	}
	return abs
}
