package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// requireArgs returns a positional-args validator that explains which
// arguments are missing. The "accepts" wording keeps usage errors on exit code 2.
func requireArgs(example string, names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return fmt.Errorf(`requires at least %d arg(s), missing <%s>

Usage: %s

Example:
  %s %s`, len(names), names[len(args)], cmd.UseLine(), cmd.CommandPath(), example)
		}
		if len(args) > len(names) {
			return fmt.Errorf("accepts %d arg(s), received %d", len(names), len(args))
		}
		return nil
	}
}
