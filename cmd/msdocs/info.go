package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/msdocs"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	info, err := deps.BuildInfo.BuildInfo(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", msdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Format version: %s\n", info.FormatVersion)
	fmt.Fprintf(deps.Stdout, "Build ID:       %s\n", info.BuildID)
	fmt.Fprintf(deps.Stdout, "Built at:       %s\n", info.BuiltAt.Format(time.RFC3339))
	fmt.Fprintf(deps.Stdout, "Entries:        %d\n", info.EntryCount)

	return nil
}
