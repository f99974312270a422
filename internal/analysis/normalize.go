package analysis

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/user/seo-monitor/internal/entity"
)

var (
	schemePattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
	indexPagePattern = regexp.MustCompile(`(?i)/index\.html?$`)
	extensionPattern = regexp.MustCompile(`(?i)\.[a-z0-9]+$`)
	languagePattern  = regexp.MustCompile(`^/([a-z]{2})(?:/|$)`)
)

// absolute turns root-relative and schemeless input into an absolute URL.
func (e *Engine) absolute(raw string) string {
	if strings.HasPrefix(raw, "/") {
		return e.origin + raw
	}
	if !schemePattern.MatchString(raw) {
		return "https://" + raw
	}
	return raw
}

// parse resolves raw the way Normalize does. A URL without a host counts as
// a parse failure.
func (e *Engine) parse(raw string) (*url.URL, bool) {
	u, err := url.Parse(e.absolute(raw))
	if err != nil || u.Host == "" {
		return nil, false
	}
	return u, true
}

// Normalize returns the canonical form of raw: https, www host, lower-case
// path without index pages, a trailing slash unless the path names a file,
// and no query or fragment. Input that cannot be parsed is returned verbatim.
//
// Normalize is idempotent.
func (e *Engine) Normalize(raw string) string {
	u, ok := e.parse(raw)
	if !ok {
		return raw
	}

	host := strings.ToLower(u.Host)
	if strings.EqualFold(u.Hostname(), e.domain) {
		host = "www." + host
	}

	path := strings.ToLower(u.EscapedPath())
	path = indexPagePattern.ReplaceAllString(path, "/")
	if !hasExtension(path) && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	if path == "" {
		path = "/"
	}

	return "https://" + host + path
}

// ExtractPath returns the escaped path of raw, or raw itself when it cannot
// be parsed.
func (e *Engine) ExtractPath(raw string) string {
	u, ok := e.parse(raw)
	if !ok {
		return raw
	}
	if p := u.EscapedPath(); p != "" {
		return p
	}
	return "/"
}

// ExtractLanguage returns the language prefix of raw's path, or LanguageNone
// for the unprefixed default language and for unknown prefixes.
func (e *Engine) ExtractLanguage(raw string) entity.Language {
	u, ok := e.parse(raw)
	if !ok {
		return entity.LanguageNone
	}
	m := languagePattern.FindStringSubmatch(u.EscapedPath())
	if m == nil {
		return entity.LanguageNone
	}
	return e.languages[m[1]]
}

func hasExtension(path string) bool {
	return extensionPattern.MatchString(path)
}
