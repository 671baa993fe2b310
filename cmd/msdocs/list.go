package main

import (
	"fmt"

	"github.com/fwojciec/msdocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := msdocs.EntryFilter{Limit: c.Limit}
	if c.Prefix != "" {
		filter.Prefix = &c.Prefix
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", msdocs.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintln(deps.Stdout, e.Name)
	}

	return nil
}
