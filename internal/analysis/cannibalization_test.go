package analysis

import (
	"testing"

	"github.com/user/seo-monitor/internal/entity"
)

func queryWithPositions(query string, impressions int, positions ...float64) entity.QueryRecord {
	rec := entity.QueryRecord{Query: query}
	for i, pos := range positions {
		rec.Pages = append(rec.Pages, entity.QueryPage{
			URL:         "/page-" + string(rune('a'+i)),
			Position:    pos,
			Impressions: impressions,
		})
	}
	return rec
}

func TestDetectCannibalization_HighSeverity(t *testing.T) {
	e := New(DefaultSite())

	issues := e.DetectCannibalization([]entity.QueryRecord{{
		Query: "pizza muenchen",
		Pages: []entity.QueryPage{
			{URL: "/a", Position: 3, Clicks: 10, Impressions: 100},
			{URL: "/b", Position: 5, Clicks: 4, Impressions: 40},
		},
	}})

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	issue := issues[0]
	if issue.Severity != entity.SeverityHigh {
		t.Fatalf("severity = %q, want high", issue.Severity)
	}
	if issue.Query != "pizza muenchen" || issue.Recommendation == "" {
		t.Fatalf("unexpected issue %+v", issue)
	}
	if issue.Pages[0].Path != "/a" || issue.Pages[1].Path != "/b" {
		t.Fatalf("pages not enriched with paths: %+v", issue.Pages)
	}
	if issue.TotalImpressions() != 140 {
		t.Fatalf("total impressions = %d", issue.TotalImpressions())
	}
}

func TestDetectCannibalization_SeverityBoundaries(t *testing.T) {
	e := New(DefaultSite())

	tests := []struct {
		spread float64
		want   entity.Severity
	}{
		{0, entity.SeverityHigh},
		{3, entity.SeverityHigh},
		{4, entity.SeverityMedium},
		{10, entity.SeverityMedium},
		{10.5, entity.SeverityLow},
		{11, entity.SeverityLow},
	}

	for _, tt := range tests {
		issues := e.DetectCannibalization([]entity.QueryRecord{queryWithPositions("q", 1, 1, 1+tt.spread)})
		if len(issues) != 1 {
			t.Fatalf("spread %v: expected 1 issue, got %d", tt.spread, len(issues))
		}
		if issues[0].Severity != tt.want {
			t.Errorf("spread %v: severity = %q, want %q", tt.spread, issues[0].Severity, tt.want)
		}
	}
}

func TestDetectCannibalization_Filtering(t *testing.T) {
	e := New(DefaultSite())

	issues := e.DetectCannibalization([]entity.QueryRecord{
		{Query: "no pages"},
		queryWithPositions("one page", 10, 2),
		queryWithPositions("one top page", 10, 2, 21),
		queryWithPositions("none on top", 10, 25, 40),
		queryWithPositions("boundary", 10, 20, 14),
		queryWithPositions("three with one deep", 10, 1, 2, 55),
	})

	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %+v", len(issues), issues)
	}
	for _, issue := range issues {
		for _, p := range issue.Pages {
			if p.Position > MaxCompetingPosition {
				t.Fatalf("issue %q kept page at position %v", issue.Query, p.Position)
			}
		}
	}
	for _, issue := range issues {
		if issue.Query == "three with one deep" && len(issue.Pages) != 2 {
			t.Fatalf("expected deep page filtered out, got %+v", issue.Pages)
		}
	}
}

func TestDetectCannibalization_Ordering(t *testing.T) {
	e := New(DefaultSite())

	issues := e.DetectCannibalization([]entity.QueryRecord{
		queryWithPositions("medium big", 10000, 1, 8),
		queryWithPositions("low", 500, 1, 18),
		queryWithPositions("high small", 1, 2, 3),
		queryWithPositions("high big", 50, 4, 5),
		queryWithPositions("high small twin", 1, 6, 7),
	})

	want := []string{"high big", "high small", "high small twin", "medium big", "low"}
	if len(issues) != len(want) {
		t.Fatalf("expected %d issues, got %d", len(want), len(issues))
	}
	for i, q := range want {
		if issues[i].Query != q {
			t.Fatalf("issue %d = %q, want %q (all: %+v)", i, issues[i].Query, q, issues)
		}
	}
}
