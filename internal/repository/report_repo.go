package repository

import (
	"context"
	"errors"

	"github.com/user/seo-monitor/internal/entity"
)

// ErrReportNotFound is returned when no report has the requested ID.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository stores grouping and cannibalization reports.
type ReportRepository interface {
	// Save stores a report. Saving an existing ID replaces it.
	Save(ctx context.Context, report *entity.StoredReport) error
	// FindByID retrieves a report, or ErrReportNotFound.
	FindByID(ctx context.Context, id string) (*entity.StoredReport, error)
	// ListRecent returns up to limit reports of kind, newest first. An empty
	// kind matches every report.
	ListRecent(ctx context.Context, kind entity.ReportKind, limit int) ([]*entity.StoredReport, error)
}
