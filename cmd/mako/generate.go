package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fwojciec/mako"
	"github.com/fwojciec/mako/fs"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	var html string
	switch {
	case c.File != "":
		data, err := os.ReadFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		html = string(data)
	case c.URL != "":
		fetched, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		html = fetched
	default:
		return mako.Errorf(mako.EINVALID, "either a URL argument or --file is required")
	}

	capsule, err := deps.Generator.Generate(deps.Ctx, &mako.SourceDocument{
		HTML:    html,
		URL:     c.URL,
		SiteURL: c.Site,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mako.ErrorMessage(err))
		return err
	}
	if capsule == nil {
		return mako.Errorf(mako.EINVALID, "no usable content in input")
	}

	if c.Out != "" {
		if err := fs.NewStore(c.Out).SaveCapsule(deps.Ctx, capsule); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mako.ErrorMessage(err))
			return err
		}
	} else {
		fmt.Fprintln(deps.Stdout, capsule.Serialize())
	}

	if c.Headers {
		keys := make([]string, 0, len(capsule.Headers))
		for k := range capsule.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(deps.Stdout)
		for _, k := range keys {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", k, capsule.Headers[k])
		}
	}

	for _, msg := range capsule.Validation.Errors {
		fmt.Fprintf(deps.Stderr, "validation error: %s\n", msg)
	}
	for _, msg := range capsule.Validation.Warnings {
		fmt.Fprintf(deps.Stderr, "validation warning: %s\n", msg)
	}

	if capsule.HTMLTokens > 0 {
		fmt.Fprintf(deps.Stderr, "%d tokens (%.1f%% smaller than the source HTML)\n",
			capsule.TokenCount, mako.SavingsPercent(capsule.HTMLTokens, capsule.TokenCount))
	}

	return nil
}
