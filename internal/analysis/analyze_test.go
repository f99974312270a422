package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/user/seo-monitor/internal/entity"
)

func TestAnalyzeURL_ProtocolAndQuery(t *testing.T) {
	e := New(DefaultSite())

	a := e.AnalyzeURL("http://www.ristorantestoria.de/en/menu?utm=1")

	if a.IsCanonical {
		t.Fatalf("expected non-canonical, got %+v", a)
	}
	if a.Language != entity.LanguageEN {
		t.Fatalf("language = %q, want en", a.Language)
	}
	want := []entity.VariantType{entity.VariantProtocol, entity.VariantQueryParam, entity.VariantTrailingSlash}
	if !reflect.DeepEqual(a.VariantTypes, want) {
		t.Fatalf("variant types = %v, want %v", a.VariantTypes, want)
	}
	if a.CanonicalURL != "https://www.ristorantestoria.de/en/menu/" || a.CanonicalURL != a.Normalized {
		t.Fatalf("unexpected canonical url %q (normalized %q)", a.CanonicalURL, a.Normalized)
	}
	if a.Path != "/en/menu/" {
		t.Fatalf("path = %q", a.Path)
	}

	var queryIssue bool
	for _, issue := range a.Issues {
		if strings.Contains(issue, "?utm=1") {
			queryIssue = true
		}
	}
	if !queryIssue {
		t.Fatalf("expected an issue quoting the query string, got %v", a.Issues)
	}
}

func TestAnalyzeURL_DetectionOrder(t *testing.T) {
	e := New(DefaultSite())

	a := e.AnalyzeURL("http://ristorantestoria.de/cms/Index.html?id=1#top")

	want := []entity.VariantType{
		entity.VariantProtocol,
		entity.VariantWWW,
		entity.VariantCase,
		entity.VariantQueryParam,
		entity.VariantFragment,
		entity.VariantIndexHTML,
		entity.VariantLegacyCMS,
	}
	if !reflect.DeepEqual(a.VariantTypes, want) {
		t.Fatalf("variant types = %v, want %v", a.VariantTypes, want)
	}
	if len(a.Issues) != len(want) {
		t.Fatalf("expected one issue per variant, got %v", a.Issues)
	}
	if !strings.Contains(a.Issues[4], "#top") {
		t.Fatalf("fragment issue should quote the fragment, got %q", a.Issues[4])
	}
}

func TestAnalyzeURL_SingleRules(t *testing.T) {
	e := New(DefaultSite())

	tests := []struct {
		in   string
		want entity.VariantType
	}{
		{"https://www.ristorantestoria.de/menu/", entity.VariantCanonical},
		{"/menu/", entity.VariantCanonical},
		{"/files/menu.pdf", entity.VariantCanonical},
		{"https://www.ristorantestoria.de", entity.VariantCanonical},
		{"/menu", entity.VariantTrailingSlash},
		{"/Menu/", entity.VariantCase},
		{"https://ristorantestoria.de/menu/", entity.VariantWWW},
		{"http://www.ristorantestoria.de/menu/", entity.VariantProtocol},
		{"/menu/?page=2", entity.VariantQueryParam},
		{"/menu/#desserts", entity.VariantFragment},
		{"/menu/index.htm", entity.VariantIndexHTML},
		{"/cms/menu/", entity.VariantLegacyCMS},
	}

	for _, tt := range tests {
		a := e.AnalyzeURL(tt.in)
		if len(a.VariantTypes) != 1 || a.VariantTypes[0] != tt.want {
			t.Errorf("AnalyzeURL(%q) variant types = %v, want [%s]", tt.in, a.VariantTypes, tt.want)
		}
	}
}

func TestAnalyzeURL_CanonicalSentinelExclusive(t *testing.T) {
	e := New(DefaultSite())

	inputs := []string{
		"/menu", "/menu/", "/Menu", "http://ristorantestoria.de", "/en/", "/it/menu/?x=1",
		"/cms/", "/index.html", "https://example.com/A", "/files/a.pdf#p=2",
	}

	for _, in := range inputs {
		a := e.AnalyzeURL(in)
		hasSentinel := false
		for _, v := range a.VariantTypes {
			if v == entity.VariantCanonical {
				hasSentinel = true
			}
		}
		if hasSentinel != a.IsCanonical {
			t.Errorf("%q: IsCanonical=%v but sentinel present=%v", in, a.IsCanonical, hasSentinel)
		}
		if hasSentinel && len(a.VariantTypes) != 1 {
			t.Errorf("%q: canonical sentinel combined with other types: %v", in, a.VariantTypes)
		}
		if !hasSentinel && len(a.VariantTypes) == 0 {
			t.Errorf("%q: parseable URL has no variant types", in)
		}
	}
}

func TestAnalyzeURL_InvalidURL(t *testing.T) {
	e := New(DefaultSite())

	a := e.AnalyzeURL("http://exa mple.com/page")

	if a.IsCanonical {
		t.Fatalf("invalid URL must not be canonical")
	}
	if len(a.VariantTypes) != 0 {
		t.Fatalf("invalid URL must have no variant types, got %v", a.VariantTypes)
	}
	if !reflect.DeepEqual(a.Issues, []string{"Invalid URL format"}) {
		t.Fatalf("issues = %v", a.Issues)
	}
	if a.Normalized != a.Original || a.CanonicalURL != a.Original {
		t.Fatalf("invalid URL must normalize to itself, got %q", a.Normalized)
	}
}
