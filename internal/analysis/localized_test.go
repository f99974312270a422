package analysis

import (
	"reflect"
	"testing"

	"github.com/user/seo-monitor/internal/entity"
)

func TestLocalizedURL(t *testing.T) {
	e := New(DefaultSite())
	slugs := entity.LocalizedSlugs{DE: "speisekarte", EN: "menu", IT: "Menu"}

	tests := []struct {
		lang entity.Language
		want string
	}{
		{entity.LanguageDE, "https://www.ristorantestoria.de/speisekarte/"},
		{entity.LanguageEN, "https://www.ristorantestoria.de/en/menu/"},
		{entity.LanguageIT, "https://www.ristorantestoria.de/it/menu/"},
		{entity.LanguageFR, "https://www.ristorantestoria.de/fr/speisekarte/"},
	}

	for _, tt := range tests {
		if got := e.LocalizedURL(slugs, tt.lang); got != tt.want {
			t.Errorf("LocalizedURL(%s) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestAlternates_HomePage(t *testing.T) {
	e := New(DefaultSite())

	got := e.Alternates(entity.LocalizedSlugs{})
	want := []entity.HreflangLink{
		{Lang: "de", Href: "https://www.ristorantestoria.de/"},
		{Lang: "en", Href: "https://www.ristorantestoria.de/en/"},
		{Lang: "it", Href: "https://www.ristorantestoria.de/it/"},
		{Lang: "fr", Href: "https://www.ristorantestoria.de/fr/"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Alternates = %+v, want %+v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	e := New(DefaultSite())
	groups := e.GroupURLsByCanonical([]entity.URLRecord{
		{URL: "/menu", Clicks: intPtr(1)},
		{URL: "/menu/", Clicks: intPtr(2)},
		{URL: "/Menu/"},
		{URL: "/kontakt/", Impressions: intPtr(5)},
	})

	s := Summarize(groups)

	if s.Groups != 2 || s.Variants != 2 || s.GroupsWithVariants != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.ByType[entity.VariantTrailingSlash] != 1 || s.ByType[entity.VariantCase] != 1 {
		t.Fatalf("unexpected by-type counts %+v", s.ByType)
	}
	if s.TotalClicks != 3 || s.TotalImpressions != 5 {
		t.Fatalf("unexpected totals %+v", s)
	}
}
