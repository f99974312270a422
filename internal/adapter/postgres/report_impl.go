package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
)

// Schema creates the reports table. Payloads are stored as JSONB.
const Schema = `
	CREATE TABLE IF NOT EXISTS seo_reports (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		payload    JSONB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS seo_reports_kind_created_idx ON seo_reports (kind, created_at DESC);
`

// ReportRepoImpl provides a concrete implementation for the ReportRepository interface using PostgreSQL.
type ReportRepoImpl struct {
	db *pgxpool.Pool
}

// NewReportRepo creates a new instance of ReportRepoImpl.
func NewReportRepo(db *pgxpool.Pool) *ReportRepoImpl {
	return &ReportRepoImpl{db: db}
}

// EnsureSchema creates the reports table if it does not exist yet.
func (r *ReportRepoImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, Schema)
	return err
}

// Save stores or replaces a report.
func (r *ReportRepoImpl) Save(ctx context.Context, report *entity.StoredReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO seo_reports (id, kind, created_at, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind,
			created_at = EXCLUDED.created_at,
			payload = EXCLUDED.payload;
	`
	_, err = r.db.Exec(ctx, query, report.ID, string(report.Kind), report.CreatedAt, payload)
	return err
}

// FindByID retrieves a report from the database.
func (r *ReportRepoImpl) FindByID(ctx context.Context, id string) (*entity.StoredReport, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM seo_reports WHERE id = $1;`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrReportNotFound
		}
		return nil, err
	}
	return decodeReport(payload)
}

// ListRecent returns the newest reports of kind, or of every kind when kind is empty.
func (r *ReportRepoImpl) ListRecent(ctx context.Context, kind entity.ReportKind, limit int) ([]*entity.StoredReport, error) {
	query := `
		SELECT payload
		FROM seo_reports
		WHERE $1 = '' OR kind = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, string(kind), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]*entity.StoredReport, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		report, err := decodeReport(payload)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// Ping checks the connection to PostgreSQL.
func (r *ReportRepoImpl) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func decodeReport(payload []byte) (*entity.StoredReport, error) {
	var report entity.StoredReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}
