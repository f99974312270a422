package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
	bolt "go.etcd.io/bbolt"
)

var reportsBucket = []byte("reports")

// ReportRepoImpl implements ReportRepository on an embedded bbolt file.
type ReportRepoImpl struct {
	db *bolt.DB
}

// NewReportRepo opens (or creates) the bbolt database at path.
func NewReportRepo(path string) (*ReportRepoImpl, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(reportsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create reports bucket: %w", err)
	}

	return &ReportRepoImpl{db: db}, nil
}

// Save stores or replaces a report.
func (r *ReportRepoImpl) Save(_ context.Context, report *entity.StoredReport) error {
	value, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(reportsBucket).Put([]byte(report.ID), value)
	})
}

// FindByID retrieves a report by its ID.
func (r *ReportRepoImpl) FindByID(_ context.Context, id string) (*entity.StoredReport, error) {
	var report *entity.StoredReport
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(reportsBucket).Get([]byte(id))
		if v == nil {
			return repository.ErrReportNotFound
		}
		// v is only valid inside the transaction; Unmarshal copies it out.
		var decoded entity.StoredReport
		if err := json.Unmarshal(v, &decoded); err != nil {
			return fmt.Errorf("decode report: %w", err)
		}
		report = &decoded
		return nil
	})
	return report, err
}

// ListRecent returns the newest reports of kind, or of every kind when kind is empty.
func (r *ReportRepoImpl) ListRecent(_ context.Context, kind entity.ReportKind, limit int) ([]*entity.StoredReport, error) {
	reports := make([]*entity.StoredReport, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(reportsBucket).ForEach(func(_, v []byte) error {
			var report entity.StoredReport
			if err := json.Unmarshal(v, &report); err != nil {
				return fmt.Errorf("decode report: %w", err)
			}
			if kind == "" || report.Kind == kind {
				reports = append(reports, &report)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

// Close closes the database file.
func (r *ReportRepoImpl) Close() error {
	return r.db.Close()
}
