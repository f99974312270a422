package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/user/seo-monitor/internal/analysis"
	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/htmlmeta"
	"github.com/user/seo-monitor/internal/repository"
	"github.com/user/seo-monitor/pkg/metrics"
	"go.uber.org/zap"
)

// PageAuditor compares a live page's canonical and hreflang declarations
// with the URLs the engine expects.
type PageAuditor interface {
	Audit(ctx context.Context, url string, slugs *entity.LocalizedSlugs) (*entity.PageAudit, error)
}

type pageAuditorUseCase struct {
	engine  *analysis.Engine
	fetcher repository.PageFetcher
	logger  *zap.Logger
	now     func() time.Time
}

// NewPageAuditor creates a new PageAuditor.
func NewPageAuditor(engine *analysis.Engine, fetcher repository.PageFetcher, logger *zap.Logger) PageAuditor {
	return &pageAuditorUseCase{
		engine:  engine,
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Audit fetches url and reports missing, duplicated or mismatching canonical
// links. When slugs are given, the declared hreflang alternates are checked
// against the expected localized URLs as well.
func (uc *pageAuditorUseCase) Audit(ctx context.Context, url string, slugs *entity.LocalizedSlugs) (*entity.PageAudit, error) {
	target := url
	if strings.HasPrefix(target, "/") {
		target = uc.engine.Site().Origin() + target
	}

	start := time.Now()
	page, err := uc.fetcher.Fetch(ctx, target)
	metrics.PageFetchDuration.WithLabelValues(uc.fetcher.Mode()).Observe(time.Since(start).Seconds())
	if err != nil {
		uc.logger.Warn("failed to fetch page for audit", zap.String("url", target), zap.Error(err))
		return nil, err
	}

	base := page.FinalURL
	if base == "" {
		base = target
	}
	meta, err := htmlmeta.Extract(base, page.HTML)
	if err != nil {
		return nil, fmt.Errorf("failed to extract page metadata for %s: %w", target, err)
	}

	audit := &entity.PageAudit{
		URL:            target,
		Analysis:       uc.engine.AnalyzeURL(target),
		Meta:           meta,
		HTTPStatusCode: page.HTTPStatusCode,
		ResponseTimeMS: page.ResponseTimeMS,
		Findings:       []string{},
		AuditedAt:      uc.now().UTC(),
	}
	uc.checkStatus(audit)
	uc.checkCanonical(audit)
	if slugs != nil {
		uc.checkAlternates(audit, *slugs)
	}

	uc.logger.Info("audited page",
		zap.String("url", target),
		zap.Int("status", audit.HTTPStatusCode),
		zap.Int("findings", len(audit.Findings)),
	)
	return audit, nil
}

func (uc *pageAuditorUseCase) checkStatus(audit *entity.PageAudit) {
	if audit.HTTPStatusCode >= 400 {
		audit.Findings = append(audit.Findings, fmt.Sprintf("Page responded with status %d", audit.HTTPStatusCode))
	}
}

func (uc *pageAuditorUseCase) checkCanonical(audit *entity.PageAudit) {
	switch {
	case audit.Meta.CanonicalURL == "":
		audit.MissingCanonical = true
		audit.Findings = append(audit.Findings, "Page declares no canonical URL")
		return
	case audit.Meta.CanonicalCount > 1:
		audit.MultipleCanonicals = true
		audit.Findings = append(audit.Findings, fmt.Sprintf("Page declares %d canonical links", audit.Meta.CanonicalCount))
	}

	declared := uc.engine.Normalize(audit.Meta.CanonicalURL)
	if declared != audit.Meta.CanonicalURL {
		audit.Findings = append(audit.Findings, "Declared canonical is not in canonical form: "+audit.Meta.CanonicalURL)
	}
	if declared != audit.Analysis.CanonicalURL {
		audit.CanonicalMismatch = true
		audit.Findings = append(audit.Findings, fmt.Sprintf("Declared canonical %s differs from expected %s", audit.Meta.CanonicalURL, audit.Analysis.CanonicalURL))
	}
}

func (uc *pageAuditorUseCase) checkAlternates(audit *entity.PageAudit, slugs entity.LocalizedSlugs) {
	declared := make(map[string]string, len(audit.Meta.Alternates))
	for _, alt := range audit.Meta.Alternates {
		if _, seen := declared[alt.Lang]; !seen {
			declared[alt.Lang] = uc.engine.Normalize(alt.Href)
		}
	}

	audit.ExpectedAlternates = uc.engine.Alternates(slugs)
	for _, want := range audit.ExpectedAlternates {
		if declared[want.Lang] == want.Href {
			continue
		}
		audit.MissingAlternates = append(audit.MissingAlternates, want)
		audit.Findings = append(audit.Findings, fmt.Sprintf("Missing hreflang %s alternate %s", want.Lang, want.Href))
	}
}
