package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
	"github.com/user/seo-monitor/pkg/utils"
)

const analysisKeyPrefix = "seo:analysis:"

// AnalysisCacheImpl provides a concrete implementation for the AnalysisCache interface using Redis.
type AnalysisCacheImpl struct {
	client *redis.Client
}

// NewAnalysisCache creates a new instance of AnalysisCacheImpl.
func NewAnalysisCache(client *redis.Client) *AnalysisCacheImpl {
	return &AnalysisCacheImpl{client: client}
}

// generateKey creates a consistent Redis key by hashing the cache key.
func (r *AnalysisCacheImpl) generateKey(key string) string {
	return fmt.Sprintf("%s%s", analysisKeyPrefix, utils.HashKey(key))
}

// Get returns the cached analysis for key, or repository.ErrCacheMiss.
func (r *AnalysisCacheImpl) Get(ctx context.Context, key string) (*entity.URLAnalysis, error) {
	raw, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}

	var analysis entity.URLAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, fmt.Errorf("decode cached analysis: %w", err)
	}
	return &analysis, nil
}

// Set stores the analysis as JSON. SET with an expiry is atomic.
func (r *AnalysisCacheImpl) Set(ctx context.Context, key string, analysis *entity.URLAnalysis, expiry time.Duration) error {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.generateKey(key), raw, expiry).Err()
}

// Invalidate removes the cached analysis for key.
func (r *AnalysisCacheImpl) Invalidate(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.generateKey(key)).Err()
}

// Ping checks the connection to Redis.
func (r *AnalysisCacheImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
