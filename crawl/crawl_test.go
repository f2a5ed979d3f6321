package crawl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/mako"
	"github.com/fwojciec/mako/crawl"
	"github.com/fwojciec/mako/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCrawler(urls []string) (*crawl.Crawler, *capsuleRecorder) {
	rec := &capsuleRecorder{}

	return &crawl.Crawler{
		Sitemaps: &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *mako.URLFilter) ([]string, error) {
				return urls, nil
			},
		},
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><p>page content</p></body></html>", nil
			},
		},
		Generator: &mock.CapsuleGenerator{
			GenerateFn: func(ctx context.Context, doc *mako.SourceDocument) (*mako.Capsule, error) {
				return &mako.Capsule{
					SpecVersion: mako.SpecVersion,
					Type:        mako.TypeLanding,
					Entity:      "Page",
					Canonical:   doc.URL,
					TokenCount:  100,
					HTMLTokens:  1000,
					Body:        "# Page",
				}, nil
			},
		},
		Store:       rec.store(),
		Index:       rec.index(),
		RetryDelays: []time.Duration{},
	}, rec
}

// capsuleRecorder captures saved capsules and index records.
type capsuleRecorder struct {
	mu       sync.Mutex
	capsules []*mako.Capsule
	records  []*mako.CapsuleRecord
}

func (r *capsuleRecorder) store() *mock.CapsuleStore {
	return &mock.CapsuleStore{
		SaveCapsuleFn: func(ctx context.Context, c *mako.Capsule) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.capsules = append(r.capsules, c)
			return nil
		},
	}
}

func (r *capsuleRecorder) index() *mock.CapsuleIndex {
	return &mock.CapsuleIndex{
		UpsertCapsuleFn: func(ctx context.Context, rec *mako.CapsuleRecord) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.records = append(r.records, rec)
			return nil
		},
	}
}

func TestCrawler_CrawlSite(t *testing.T) {
	t.Parallel()

	t.Run("saves a capsule per discovered URL", func(t *testing.T) {
		t.Parallel()

		c, rec := testCrawler([]string{
			"https://example.com/",
			"https://example.com/about",
			"https://example.com/products",
		})

		result, err := c.CrawlSite(context.Background(), "https://example.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Saved)
		assert.Zero(t, result.Skipped)
		assert.Zero(t, result.Failed)
		assert.Equal(t, 300, result.Tokens)
		assert.Equal(t, 3000, result.HTMLTokens)
		assert.InDelta(t, 90.0, result.Savings(), 0.01)
		assert.Len(t, rec.capsules, 3)
		assert.Len(t, rec.records, 3)
	})

	t.Run("repeated URLs crawled once", func(t *testing.T) {
		t.Parallel()

		c, rec := testCrawler([]string{
			"https://example.com/about",
			"https://example.com/about",
			"https://example.com/about",
		})

		result, err := c.CrawlSite(context.Background(), "https://example.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Len(t, rec.capsules, 1)
	})

	t.Run("nil capsule counts as skipped", func(t *testing.T) {
		t.Parallel()

		c, rec := testCrawler([]string{"https://example.com/empty"})
		c.Generator = &mock.CapsuleGenerator{
			GenerateFn: func(ctx context.Context, doc *mako.SourceDocument) (*mako.Capsule, error) {
				return nil, nil
			},
		}

		result, err := c.CrawlSite(context.Background(), "https://example.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
		assert.Zero(t, result.Saved)
		assert.Empty(t, rec.capsules)
	})

	t.Run("fetch failure counts as failed", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler([]string{"https://example.com/down"})
		c.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", mako.Errorf(mako.EUNAVAILABLE, "HTTP 503 for %s", url)
			},
		}

		result, err := c.CrawlSite(context.Background(), "https://example.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Zero(t, result.Saved)
	})

	t.Run("discovery failure aborts", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler(nil)
		c.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *mako.URLFilter) ([]string, error) {
				return nil, mako.Errorf(mako.EUNAVAILABLE, "no sitemap found")
			},
		}

		_, err := c.CrawlSite(context.Background(), "https://example.com", nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sitemap discovery")
	})

	t.Run("no URLs yields empty result", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler(nil)

		result, err := c.CrawlSite(context.Background(), "https://example.com", nil, nil)

		require.NoError(t, err)
		assert.Zero(t, result.Saved+result.Skipped+result.Failed)
	})

	t.Run("progress events bracket the crawl", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler([]string{"https://example.com/a", "https://example.com/b"})

		var mu sync.Mutex
		var events []crawl.ProgressEvent
		_, err := c.CrawlSite(context.Background(), "https://example.com", nil, func(e crawl.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, crawl.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, crawl.ProgressCompleted, events[1].Type)
		assert.Equal(t, crawl.ProgressFinished, events[3].Type)
		assert.Equal(t, 2, events[3].Completed)
	})

	t.Run("rate limiter consulted per host", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler([]string{"https://example.com/a"})
		var mu sync.Mutex
		var domains []string
		c.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				mu.Lock()
				defer mu.Unlock()
				domains = append(domains, domain)
				return nil
			},
		}

		_, err := c.CrawlSite(context.Background(), "https://example.com", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com"}, domains)
	})

	t.Run("index record carries content hash", func(t *testing.T) {
		t.Parallel()

		c, rec := testCrawler([]string{"https://example.com/a"})

		_, err := c.CrawlSite(context.Background(), "https://example.com", nil, nil)

		require.NoError(t, err)
		require.Len(t, rec.records, 1)
		assert.Equal(t, "https://example.com/a", rec.records[0].URL)
		assert.Equal(t, crawl.ComputeHash("# Page"), rec.records[0].ContentHash)
		assert.Equal(t, 100, rec.records[0].Tokens)
	})
}
