package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
)

// maxBodyBytes caps how much HTML is read per page.
const maxBodyBytes = 5 << 20

// Fetcher loads raw HTML with a plain HTTP GET.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

func (f *Fetcher) Mode() string { return "http" }

// Fetch follows redirects and returns the body of the final response,
// whatever its status code.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*entity.FetchedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", repository.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", repository.ErrFetchFailed, err)
	}

	return &entity.FetchedPage{
		URL:            url,
		FinalURL:       resp.Request.URL.String(),
		HTML:           string(body),
		HTTPStatusCode: resp.StatusCode,
		ResponseTimeMS: int(time.Since(start).Milliseconds()),
		FetchedAt:      time.Now(),
	}, nil
}
