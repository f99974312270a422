package htmlmeta

import (
	"reflect"
	"testing"

	"github.com/user/seo-monitor/internal/entity"
)

func TestExtract_CanonicalAndAlternates(t *testing.T) {
	html := `
	<html><head>
		<title> Speisekarte </title>
		<link rel="canonical" href="/speisekarte/">
		<link rel="alternate" hreflang="de" href="https://www.ristorantestoria.de/speisekarte/">
		<link rel="alternate" hreflang="EN" href="/en/menu/">
		<link rel="alternate" hreflang="" href="/ignored/">
		<link rel="stylesheet" href="/style.css">
	</head><body></body></html>`

	meta, err := Extract("https://www.ristorantestoria.de/speisekarte/", html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta.Title != "Speisekarte" {
		t.Fatalf("title = %q", meta.Title)
	}
	if meta.CanonicalCount != 1 || meta.CanonicalURL != "https://www.ristorantestoria.de/speisekarte/" {
		t.Fatalf("unexpected canonical %q (count %d)", meta.CanonicalURL, meta.CanonicalCount)
	}
	want := []entity.HreflangLink{
		{Lang: "de", Href: "https://www.ristorantestoria.de/speisekarte/"},
		{Lang: "en", Href: "https://www.ristorantestoria.de/en/menu/"},
	}
	if !reflect.DeepEqual(meta.Alternates, want) {
		t.Fatalf("alternates = %+v, want %+v", meta.Alternates, want)
	}
}

func TestExtract_MissingAndMultipleCanonicals(t *testing.T) {
	meta, err := Extract("https://example.org/", `<html><head><title>x</title></head></html>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.CanonicalCount != 0 || meta.CanonicalURL != "" {
		t.Fatalf("expected no canonical, got %+v", meta)
	}

	meta, err = Extract("https://example.org/a/", `<html><head>
		<link rel="canonical" href="">
		<link rel="canonical" href="../b/">
	</head></html>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.CanonicalCount != 2 || meta.CanonicalURL != "https://example.org/b/" {
		t.Fatalf("expected first non-empty canonical resolved, got %+v", meta)
	}
}
