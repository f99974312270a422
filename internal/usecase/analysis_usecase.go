package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/user/seo-monitor/internal/analysis"
	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
	"github.com/user/seo-monitor/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyInput   = errors.New("input must contain at least one item")
	ErrTooManyItems = errors.New("input exceeds the maximum batch size")
)

const (
	defaultBatchWorkers = 8
	defaultMaxBatchSize = 10000
	defaultCacheTTL     = 24 * time.Hour
	defaultReportLimit  = 20
	maxReportLimit      = 100
)

// AnalyzerOptions tunes the URL analyzer. Zero values fall back to defaults.
type AnalyzerOptions struct {
	BatchWorkers int
	MaxBatchSize int
	CacheTTL     time.Duration
}

// URLAnalyzer runs the analysis engine for API and CLI callers.
type URLAnalyzer interface {
	Normalize(urls []string) ([]string, error)
	Analyze(ctx context.Context, url string, force bool) (*entity.URLAnalysis, error)
	AnalyzeBatch(ctx context.Context, urls []string, force bool) ([]entity.URLAnalysis, error)
	GroupURLs(ctx context.Context, records []entity.URLRecord) (*entity.GroupingReport, error)
	DetectCannibalization(ctx context.Context, queries []entity.QueryRecord) (*entity.CannibalizationReport, error)
	GetReport(ctx context.Context, id string) (*entity.StoredReport, error)
	ListReports(ctx context.Context, kind entity.ReportKind, limit int) ([]*entity.StoredReport, error)
}

type urlAnalyzerUseCase struct {
	engine  *analysis.Engine
	cache   repository.AnalysisCache
	reports repository.ReportRepository
	opts    AnalyzerOptions
	logger  *zap.Logger
	now     func() time.Time
}

// NewURLAnalyzer creates a new URLAnalyzer. cache may be nil to disable caching.
func NewURLAnalyzer(
	engine *analysis.Engine,
	cache repository.AnalysisCache,
	reports repository.ReportRepository,
	opts AnalyzerOptions,
	logger *zap.Logger,
) URLAnalyzer {
	if opts.BatchWorkers <= 0 {
		opts.BatchWorkers = defaultBatchWorkers
	}
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = defaultMaxBatchSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &urlAnalyzerUseCase{
		engine:  engine,
		cache:   cache,
		reports: reports,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *urlAnalyzerUseCase) checkBatch(n int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if n > uc.opts.MaxBatchSize {
		return fmt.Errorf("%w: %d > %d", ErrTooManyItems, n, uc.opts.MaxBatchSize)
	}
	return nil
}

func (uc *urlAnalyzerUseCase) Normalize(urls []string) ([]string, error) {
	if err := uc.checkBatch(len(urls)); err != nil {
		return nil, err
	}
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = uc.engine.Normalize(u)
	}
	return out, nil
}

// Analyze returns the cached analysis of url when available. force skips and
// refreshes the cache.
func (uc *urlAnalyzerUseCase) Analyze(ctx context.Context, url string, force bool) (*entity.URLAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := uc.cacheKey(url)
	if uc.cache != nil {
		if force {
			if err := uc.cache.Invalidate(ctx, key); err != nil {
				uc.logger.Warn("failed to invalidate cached analysis", zap.String("url", url), zap.Error(err))
			}
		} else if cached, ok := uc.lookup(ctx, key, url); ok {
			return cached, nil
		}
	}

	result := uc.engine.AnalyzeURL(url)
	metrics.URLsAnalyzedTotal.WithLabelValues(primaryLabel(result)).Inc()

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, &result, uc.opts.CacheTTL); err != nil {
			// The analysis is still valid without the cache.
			uc.logger.Warn("failed to cache analysis", zap.String("url", url), zap.Error(err))
		}
	}
	return &result, nil
}

func (uc *urlAnalyzerUseCase) lookup(ctx context.Context, key, url string) (*entity.URLAnalysis, bool) {
	cached, err := uc.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.AnalysisCacheTotal.WithLabelValues("hit").Inc()
		return cached, true
	case errors.Is(err, repository.ErrCacheMiss):
		metrics.AnalysisCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.AnalysisCacheTotal.WithLabelValues("error").Inc()
		uc.logger.Warn("analysis cache lookup failed", zap.String("url", url), zap.Error(err))
	}
	return nil, false
}

// AnalyzeBatch analyzes urls concurrently. Results keep the input order.
func (uc *urlAnalyzerUseCase) AnalyzeBatch(ctx context.Context, urls []string, force bool) ([]entity.URLAnalysis, error) {
	if err := uc.checkBatch(len(urls)); err != nil {
		return nil, err
	}

	results := make([]entity.URLAnalysis, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.BatchWorkers)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			a, err := uc.Analyze(gctx, u, force)
			if err != nil {
				return err
			}
			results[i] = *a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.logger.Debug("analyzed url batch", zap.Int("urls", len(urls)))
	return results, nil
}

func (uc *urlAnalyzerUseCase) GroupURLs(ctx context.Context, records []entity.URLRecord) (*entity.GroupingReport, error) {
	if err := uc.checkBatch(len(records)); err != nil {
		return nil, err
	}

	groups := uc.engine.GroupURLsByCanonical(records)
	report := &entity.GroupingReport{
		ID:        uuid.NewString(),
		Kind:      entity.ReportKindGrouping,
		Domain:    uc.engine.Site().Domain,
		CreatedAt: uc.now().UTC(),
		Groups:    groups,
		Summary:   analysis.Summarize(groups),
	}

	stored := &entity.StoredReport{ID: report.ID, Kind: report.Kind, CreatedAt: report.CreatedAt, Grouping: report}
	if err := uc.save(ctx, stored); err != nil {
		return nil, err
	}

	uc.logger.Info("grouped urls",
		zap.String("report_id", report.ID),
		zap.Int("records", len(records)),
		zap.Int("groups", report.Summary.Groups),
		zap.Int("variants", report.Summary.Variants),
	)
	return report, nil
}

func (uc *urlAnalyzerUseCase) DetectCannibalization(ctx context.Context, queries []entity.QueryRecord) (*entity.CannibalizationReport, error) {
	if err := uc.checkBatch(len(queries)); err != nil {
		return nil, err
	}

	issues := uc.engine.DetectCannibalization(queries)
	report := &entity.CannibalizationReport{
		ID:             uuid.NewString(),
		Kind:           entity.ReportKindCannibalization,
		Domain:         uc.engine.Site().Domain,
		CreatedAt:      uc.now().UTC(),
		Queries:        len(queries),
		Issues:         issues,
		SeverityCounts: analysis.CountSeverities(issues),
	}
	for _, issue := range issues {
		metrics.CannibalizationIssues.WithLabelValues(string(issue.Severity)).Inc()
	}

	stored := &entity.StoredReport{ID: report.ID, Kind: report.Kind, CreatedAt: report.CreatedAt, Cannibalization: report}
	if err := uc.save(ctx, stored); err != nil {
		return nil, err
	}

	uc.logger.Info("detected cannibalization",
		zap.String("report_id", report.ID),
		zap.Int("queries", len(queries)),
		zap.Int("issues", len(issues)),
	)
	return report, nil
}

func (uc *urlAnalyzerUseCase) save(ctx context.Context, report *entity.StoredReport) error {
	if err := uc.reports.Save(ctx, report); err != nil {
		return fmt.Errorf("failed to save %s report %s: %w", report.Kind, report.ID, err)
	}
	metrics.ReportsSavedTotal.WithLabelValues(string(report.Kind)).Inc()
	return nil
}

func (uc *urlAnalyzerUseCase) GetReport(ctx context.Context, id string) (*entity.StoredReport, error) {
	return uc.reports.FindByID(ctx, id)
}

func (uc *urlAnalyzerUseCase) ListReports(ctx context.Context, kind entity.ReportKind, limit int) ([]*entity.StoredReport, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	limit = min(limit, maxReportLimit)
	return uc.reports.ListRecent(ctx, kind, limit)
}

func (uc *urlAnalyzerUseCase) cacheKey(url string) string {
	return uc.engine.Site().Domain + "|" + url
}

func primaryLabel(a entity.URLAnalysis) string {
	if len(a.VariantTypes) == 0 {
		return "invalid"
	}
	return string(a.VariantTypes[0])
}
