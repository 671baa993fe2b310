package main

import (
	"fmt"

	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/ingest"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	progress := func(ev ingest.ProgressEvent) {
		switch ev.Type {
		case ingest.ProgressDocsetMissing:
			fmt.Fprintf(deps.Stderr, "warning: %s\n", msdocs.ErrorMessage(ev.Error))
			fmt.Fprintln(deps.Stderr, "Hint: try 'git submodule update --init --recursive'")
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Parsing %s (%d files)\n", ev.Path, ev.Total)
		}
	}

	result, err := deps.Builder.Build(deps.Ctx, c.Dirpath, c.Docset, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", msdocs.ErrorMessage(err))
		return err
	}

	count, err := deps.Entries.Count(deps.Ctx)
	if err != nil {
		return err
	}

	info := &msdocs.BuildInfo{EntryCount: count}
	if err := deps.BuildInfo.SetBuildInfo(deps.Ctx, info); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Parsed %d pages, skipped %d; %d entries (%.1f MB of text) in build %s\n",
		result.Parsed, result.Skipped, count, float64(result.Bytes)/(1<<20), info.BuildID)

	return nil
}
