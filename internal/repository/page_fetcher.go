package repository

import (
	"context"
	"errors"

	"github.com/user/seo-monitor/internal/entity"
)

// ErrFetchFailed wraps every error a PageFetcher returns.
var ErrFetchFailed = errors.New("page fetch failed")

// PageFetcher loads the HTML of a page for an audit.
type PageFetcher interface {
	// Fetch loads url and returns its final HTML.
	Fetch(ctx context.Context, url string) (*entity.FetchedPage, error)
	// Mode names the fetch strategy, e.g. "http" or "chromedp".
	Mode() string
}
