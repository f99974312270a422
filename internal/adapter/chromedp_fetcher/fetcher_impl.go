package chromedp_fetcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
	"go.uber.org/zap"
)

// ChromedpFetcher renders pages in headless Chrome so client-side canonical
// and hreflang tags are visible to the audit.
type ChromedpFetcher struct {
	allocatorPool *sync.Pool
	timeout       time.Duration
	logger        *zap.Logger
}

// NewChromedpFetcher creates a fetcher with maxConcurrency pre-warmed browser allocators.
func NewChromedpFetcher(maxConcurrency int, pageLoadTimeout time.Duration, userAgent string, logger *zap.Logger) *ChromedpFetcher {
	pool := &sync.Pool{
		New: func() interface{} {
			opts := append(chromedp.DefaultExecAllocatorOptions[:],
				chromedp.Flag("headless", true),
				chromedp.Flag("disable-gpu", true),
				chromedp.Flag("no-sandbox", true),
				chromedp.Flag("disable-dev-shm-usage", true),
				chromedp.UserAgent(userAgent),
			)
			allocCtx, _ := chromedp.NewExecAllocator(context.Background(), opts...)
			return allocCtx
		},
	}

	for i := 0; i < maxConcurrency; i++ {
		allocCtx := pool.Get().(context.Context)
		pool.Put(allocCtx)
	}

	return &ChromedpFetcher{
		allocatorPool: pool,
		timeout:       pageLoadTimeout,
		logger:        logger,
	}
}

// Mode implements repository.PageFetcher.
func (c *ChromedpFetcher) Mode() string {
	return "chromedp"
}

// Fetch navigates to url and returns the rendered document.
func (c *ChromedpFetcher) Fetch(ctx context.Context, url string) (*entity.FetchedPage, error) {
	allocCtx := c.allocatorPool.Get().(context.Context)
	defer c.allocatorPool.Put(allocCtx)

	taskCtx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(c.logger.Sugar().Debugf))
	defer cancel()

	taskCtx, cancel = context.WithTimeout(taskCtx, c.timeout)
	defer cancel()

	// Stop rendering when the caller gives up.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	start := time.Now()
	resp, err := chromedp.RunResponse(taskCtx, chromedp.Navigate(url))
	if err != nil {
		return nil, fmt.Errorf("%w: navigate %s: %w", repository.ErrFetchFailed, url, err)
	}

	var html, finalURL string
	err = chromedp.Run(taskCtx,
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Location(&finalURL),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: render %s: %w", repository.ErrFetchFailed, url, err)
	}

	page := &entity.FetchedPage{
		URL:            url,
		FinalURL:       finalURL,
		HTML:           html,
		ResponseTimeMS: int(time.Since(start).Milliseconds()),
		FetchedAt:      time.Now(),
	}
	if resp != nil {
		page.HTTPStatusCode = int(resp.Status)
	}

	c.logger.Debug("rendered page", zap.String("url", url), zap.Int("status", page.HTTPStatusCode))
	return page, nil
}
