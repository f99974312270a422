package throttle

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
	"golang.org/x/time/rate"
)

// Fetcher limits how often the wrapped fetcher hits each host.
type Fetcher struct {
	next  repository.PageFetcher
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New wraps next with a per-host token bucket of perSecond requests.
// A non-positive perSecond returns next unchanged.
func New(next repository.PageFetcher, perSecond float64, burst int) repository.PageFetcher {
	if perSecond <= 0 {
		return next
	}
	if burst <= 0 {
		burst = 1
	}
	return &Fetcher{
		next:     next,
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (f *Fetcher) Mode() string {
	return f.next.Mode()
}

// Fetch waits for the host's limiter, then delegates.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*entity.FetchedPage, error) {
	if err := f.limiterFor(hostOf(rawURL)).Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: waiting for rate limit: %w", repository.ErrFetchFailed, err)
	}
	return f.next.Fetch(ctx, rawURL)
}

func (f *Fetcher) limiterFor(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(f.limit, f.burst)
		f.limiters[host] = limiter
	}
	return limiter
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
