package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
)

func newTestRepo(t *testing.T) *ReportRepoImpl {
	t.Helper()
	repo, err := NewReportRepo(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("open repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestReportRepo_SaveAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	report := &entity.StoredReport{
		ID:        "r1",
		Kind:      entity.ReportKindGrouping,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Grouping: &entity.GroupingReport{
			ID:     "r1",
			Kind:   entity.ReportKindGrouping,
			Domain: "ristorantestoria.de",
			Groups: []entity.URLVariantGroup{{CanonicalURL: "https://www.ristorantestoria.de/menu/", TotalClicks: 3}},
		},
	}
	if err := repo.Save(ctx, report); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.FindByID(ctx, "r1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Kind != entity.ReportKindGrouping || got.Grouping == nil || got.Grouping.Groups[0].TotalClicks != 3 {
		t.Fatalf("unexpected report %+v", got)
	}
	if !got.CreatedAt.Equal(report.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, report.CreatedAt)
	}
}

func TestReportRepo_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, repository.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestReportRepo_ListRecent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	reports := []*entity.StoredReport{
		{ID: "a", Kind: entity.ReportKindGrouping, CreatedAt: base},
		{ID: "b", Kind: entity.ReportKindCannibalization, CreatedAt: base.Add(time.Hour)},
		{ID: "c", Kind: entity.ReportKindGrouping, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, r := range reports {
		if err := repo.Save(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.ID, err)
		}
	}

	all, err := repo.ListRecent(ctx, "", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != "c" || all[2].ID != "a" {
		t.Fatalf("unexpected order: %v, %v, %v", all[0].ID, all[1].ID, all[2].ID)
	}

	grouping, err := repo.ListRecent(ctx, entity.ReportKindGrouping, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(grouping) != 1 || grouping[0].ID != "c" {
		t.Fatalf("expected newest grouping report, got %+v", grouping)
	}
}
