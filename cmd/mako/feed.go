package main

import (
	"fmt"

	"github.com/fwojciec/mako"
	"github.com/fwojciec/mako/fs"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	var filter mako.CapsuleFilter
	if c.Type != "" {
		t := mako.Type(c.Type)
		if !mako.ValidType(t) {
			return mako.Errorf(mako.EINVALID, "unknown capsule type %q", c.Type)
		}
		filter.Type = &t
	}
	if c.Language != "" {
		filter.Language = &c.Language
	}

	records, err := deps.Index.FindCapsules(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mako.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		if err := fs.NewStore(c.Out).WriteFeed(records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mako.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d entries to %s/mako.json\n", len(records), c.Out)
		return nil
	}

	data, err := mako.BuildFeed(records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mako.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	return nil
}
