package main

import (
	"context"
	"io"

	"github.com/fwojciec/mako"
	"github.com/fwojciec/mako/crawl"
	"github.com/fwojciec/mako/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Index     mako.CapsuleIndex
	Sitemaps  mako.SitemapService
	Fetcher   mako.Fetcher
	Generator *generate.Generator
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate a capsule for one page"`
	Crawl    CrawlCmd    `cmd:"" help:"Generate capsules for a whole site"`
	Validate ValidateCmd `cmd:"" help:"Validate a serialized capsule file"`
	Feed     FeedCmd     `cmd:"" help:"Write the JSON discovery feed from the index"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL       string `arg:"" optional:"" help:"Page URL to fetch and convert"`
	File      string `short:"f" help:"Read rendered HTML from a file instead of fetching"`
	Site      string `short:"s" help:"Site base URL for internal/external link classification"`
	Out       string `short:"o" help:"Write the capsule under this directory instead of stdout"`
	MaxTokens int    `default:"1000" help:"Body token budget"`
	Reducer   string `default:"goquery" enum:"goquery,trafilatura,readability" help:"Primary reduction strategy"`
	Headers   bool   `help:"Print the HTTP header map after the capsule"`
	Enhance   bool   `help:"Rewrite the summary with Gemini (requires GEMINI_API_KEY)"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string   `arg:"" help:"Site URL to crawl"`
	Out         string   `short:"o" default:"./capsules" help:"Output directory for capsule files"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64  `default:"1.0" help:"Requests per second per domain"`
	MaxTokens   int      `default:"1000" help:"Body token budget"`
	Reducer     string   `default:"goquery" enum:"goquery,trafilatura,readability" help:"Primary reduction strategy"`
	Enhance     bool     `help:"Rewrite summaries with Gemini (requires GEMINI_API_KEY)"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	File      string `arg:"" help:"Serialized capsule file"`
	MaxTokens int    `default:"1000" help:"Token budget to validate against"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	Out      string `short:"o" help:"Write mako.json under this directory instead of stdout"`
	Type     string `help:"Only include capsules of this type"`
	Language string `help:"Only include capsules in this language"`
}
