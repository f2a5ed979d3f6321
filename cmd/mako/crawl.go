package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/mako"
	"github.com/fwojciec/mako/crawl"
	"github.com/fwojciec/mako/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	var urlFilter *mako.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &mako.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	store := fs.NewStore(c.Out)
	deps.Crawler.Store = store

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.URL, event.Error)
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: no usable content\n", event.URL)
		}
	}

	result, err := deps.Crawler.CrawlSite(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d capsules (%s, %s), %d skipped, %d failed\n",
		result.Saved, crawl.FormatTokens(result.Tokens), crawl.FormatSavings(result.Savings()),
		result.Skipped, result.Failed)

	// Refresh the discovery feed alongside the capsules.
	records, err := deps.Index.FindCapsules(deps.Ctx, mako.CapsuleFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mako.ErrorMessage(err))
		return err
	}
	if err := store.WriteFeed(records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mako.ErrorMessage(err))
		return err
	}

	return nil
}
