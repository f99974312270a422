package entity

// Language is a site language. The default language is served without a
// path prefix; every other language lives under "/<code>/".
type Language string

const (
	LanguageNone Language = ""
	LanguageDE   Language = "de"
	LanguageEN   Language = "en"
	LanguageIT   Language = "it"
	LanguageFR   Language = "fr"
)

// LocalizedSlugs holds the per-language slug of a single page.
type LocalizedSlugs struct {
	DE string `json:"de"`
	EN string `json:"en,omitempty"`
	IT string `json:"it,omitempty"`
	FR string `json:"fr,omitempty"`
}

// Slug returns the slug for lang. Languages without a translation fall back
// to the default slug.
func (s LocalizedSlugs) Slug(lang Language) string {
	var slug string
	switch lang {
	case LanguageEN:
		slug = s.EN
	case LanguageIT:
		slug = s.IT
	case LanguageFR:
		slug = s.FR
	case LanguageDE:
		slug = s.DE
	}
	if slug == "" {
		return s.DE
	}
	return slug
}
