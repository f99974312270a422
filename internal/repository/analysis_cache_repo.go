package repository

import (
	"context"
	"errors"
	"time"

	"github.com/user/seo-monitor/internal/entity"
)

// ErrCacheMiss is returned by AnalysisCache.Get when the key is absent.
var ErrCacheMiss = errors.New("analysis cache miss")

// AnalysisCache keeps recent URL analyses keyed by site and URL.
type AnalysisCache interface {
	// Get returns a cached analysis, or ErrCacheMiss.
	Get(ctx context.Context, key string) (*entity.URLAnalysis, error)
	// Set stores an analysis with the given expiry.
	Set(ctx context.Context, key string, analysis *entity.URLAnalysis, expiry time.Duration) error
	// Invalidate removes a cached analysis.
	Invalidate(ctx context.Context, key string) error
}
