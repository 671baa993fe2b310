package main

import (
	"fmt"

	"github.com/fwojciec/msdocs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	match, err := deps.Resolver.Resolve(deps.Ctx, c.Symbol)
	if err != nil {
		if msdocs.ErrorCode(err) == msdocs.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "no documentation found for %q\n", c.Symbol)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", msdocs.ErrorMessage(err))
		}
		return err
	}

	if match.Kind == msdocs.MatchFuzzy {
		fmt.Fprintf(deps.Stdout, "Showing results for %s (edit distance %d)\n\n", match.Name, match.Distance)
	}
	fmt.Fprintln(deps.Stdout, match.Entry.Description)

	return nil
}
