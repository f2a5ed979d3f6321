// Package crawl provides bulk capsule generation orchestration.
// It coordinates sitemap discovery, fetching, generation, and storage
// of content capsules for a whole site.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/mako"
	"github.com/fwojciec/mako/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for the seen-URL set.
const (
	seenExpectedURLs     = 10000
	seenFalsePositiveRate = 0.01
)

// Crawler orchestrates bulk capsule generation for a site.
type Crawler struct {
	Sitemaps    mako.SitemapService
	Fetcher     mako.Fetcher
	Generator   mako.CapsuleGenerator
	Store       mako.CapsuleStore
	Index       mako.CapsuleIndex
	RateLimiter mako.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	Tokens  int

	// HTMLTokens accumulates source HTML token estimates, for savings
	// reporting.
	HTMLTokens int
}

// Savings returns the percentage of tokens saved across the crawl.
func (r *Result) Savings() float64 {
	return mako.SavingsPercent(r.HTMLTokens, r.Tokens)
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	url     string
	capsule *mako.Capsule
	skipped bool
	err     error
}

// CrawlSite discovers a site's pages, generates a capsule for each,
// and persists them. The progress callback, if provided, receives
// events as crawling proceeds.
func (c *Crawler) CrawlSite(ctx context.Context, siteURL string, filter *mako.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := c.Sitemaps.DiscoverURLs(ctx, siteURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	if len(urls) == 0 {
		return &Result{}, nil
	}

	// The sitemap walk deduplicates, but indexes on large sites still
	// repeat URLs across sub-sitemaps.
	seen := bloom.NewFilter(seenExpectedURLs, seenFalsePositiveRate)
	var unique []string
	for _, u := range urls {
		if !seen.TestAndAdd(u) {
			unique = append(unique, u)
		}
	}
	urls = unique

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan crawlResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, pageURL := range urls {
			pageURL := pageURL
			g.Go(func() error {
				resultCh <- c.processURL(gctx, siteURL, pageURL)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	for r := range resultCh {
		completed.Add(1)

		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       r.url,
		}

		switch {
		case r.err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		case r.skipped:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			if err := c.save(ctx, r.capsule); err != nil {
				result.Failed++
				event.Type = ProgressFailed
				event.Error = err
				break
			}
			result.Saved++
			result.Tokens += r.capsule.TokenCount
			result.HTMLTokens += r.capsule.HTMLTokens
			event.Type = ProgressCompleted
		}

		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// processURL fetches one page and generates its capsule.
func (c *Crawler) processURL(ctx context.Context, siteURL, pageURL string) crawlResult {
	result := crawlResult{url: pageURL}

	if c.RateLimiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := c.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	capsule, err := c.Generator.Generate(ctx, &mako.SourceDocument{
		HTML:    html,
		URL:     pageURL,
		SiteURL: siteURL,
	})
	if err != nil {
		result.err = err
		return result
	}
	if capsule == nil {
		// Unusable input is a skip, not a failure.
		result.skipped = true
		return result
	}

	result.capsule = capsule
	return result
}

// save persists the capsule and its index record.
func (c *Crawler) save(ctx context.Context, capsule *mako.Capsule) error {
	if c.Store != nil {
		if err := c.Store.SaveCapsule(ctx, capsule); err != nil {
			return err
		}
	}

	if c.Index != nil {
		rec := &mako.CapsuleRecord{
			URL:         capsule.Canonical,
			Type:        capsule.Type,
			Entity:      capsule.Entity,
			Tokens:      capsule.TokenCount,
			Language:    capsule.Language,
			Updated:     capsule.Updated,
			ContentHash: ComputeHash(capsule.Body),
		}
		if err := c.Index.UpsertCapsule(ctx, rec); err != nil {
			return err
		}
	}

	return nil
}
