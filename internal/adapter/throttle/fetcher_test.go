package throttle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/user/seo-monitor/internal/entity"
	"github.com/user/seo-monitor/internal/repository"
)

type countingFetcher struct {
	mu    sync.Mutex
	calls int
}

func (c *countingFetcher) Fetch(_ context.Context, url string) (*entity.FetchedPage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return &entity.FetchedPage{URL: url, FinalURL: url, HTTPStatusCode: 200}, nil
}

func (c *countingFetcher) Mode() string { return "counting" }

func TestNew_DisabledReturnsNext(t *testing.T) {
	next := &countingFetcher{}
	if got := New(next, 0, 1); got != repository.PageFetcher(next) {
		t.Fatalf("expected the wrapped fetcher to be returned unchanged")
	}
}

func TestFetch_DelegatesWithinBurst(t *testing.T) {
	next := &countingFetcher{}
	f := New(next, 1, 2)

	for i := 0; i < 2; i++ {
		if _, err := f.Fetch(context.Background(), "https://example.org/a/"); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	if next.calls != 2 {
		t.Errorf("calls = %d, want 2", next.calls)
	}
	if f.Mode() != "counting" {
		t.Errorf("Mode = %q", f.Mode())
	}
}

func TestFetch_ExhaustedBucketHonoursContext(t *testing.T) {
	next := &countingFetcher{}
	f := New(next, 0.01, 1)

	if _, err := f.Fetch(context.Background(), "https://example.org/a/"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Fetch(ctx, "https://EXAMPLE.org/b/")
	if !errors.Is(err, repository.ErrFetchFailed) {
		t.Fatalf("got %v, want ErrFetchFailed", err)
	}

	// Other hosts have their own bucket.
	if _, err := f.Fetch(context.Background(), "https://example.com/"); err != nil {
		t.Fatalf("other host: %v", err)
	}
	if next.calls != 2 {
		t.Errorf("calls = %d, want 2", next.calls)
	}
}
