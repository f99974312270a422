// Package analysis canonicalizes site URLs, classifies URL variants, groups
// observed URLs by canonical identity and detects keyword cannibalization.
//
// Every operation is a pure function of its arguments and the immutable Site
// the Engine was built with, so an Engine is safe for concurrent use.
package analysis

import (
	"strings"

	"github.com/user/seo-monitor/internal/entity"
)

// Site describes the website whose URLs are analyzed.
type Site struct {
	// Domain is the bare apex domain, e.g. "ristorantestoria.de".
	Domain string
	// DefaultLanguage is served without a path prefix.
	DefaultLanguage entity.Language
	// Languages are the prefixed, non-default languages.
	Languages []entity.Language
}

// DefaultSite returns the configuration of ristorantestoria.de.
func DefaultSite() Site {
	return Site{
		Domain:          "ristorantestoria.de",
		DefaultLanguage: entity.LanguageDE,
		Languages:       []entity.Language{entity.LanguageEN, entity.LanguageIT, entity.LanguageFR},
	}
}

// Origin is the canonical scheme and host of the site.
func (s Site) Origin() string {
	return "https://www." + s.apex()
}

func (s Site) apex() string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s.Domain)), "www.")
}

// Engine runs the analysis pipeline for one Site.
type Engine struct {
	site      Site
	domain    string
	origin    string
	languages map[string]entity.Language
}

// New builds an Engine for site. The default language is never treated as a
// path prefix, even if it is also listed in site.Languages.
func New(site Site) *Engine {
	e := &Engine{
		site:      site,
		domain:    site.apex(),
		origin:    site.Origin(),
		languages: make(map[string]entity.Language, len(site.Languages)),
	}
	for _, lang := range site.Languages {
		if lang == site.DefaultLanguage || lang == entity.LanguageNone {
			continue
		}
		e.languages[string(lang)] = lang
	}
	return e
}

// Site returns the configuration the Engine was built with.
func (e *Engine) Site() Site {
	return e.site
}
