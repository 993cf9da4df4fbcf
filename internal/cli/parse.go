package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpha-tango-kilo/steam-idler/internal/duration"
)

var parseCmd = LeafCommand{
	Use:     "parse <duration>",
	Short:   "Show how a duration string is understood",
	Example: "  steam-idler parse 1h20m4d",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args[0])
	},
}.Build()

func runParse(cmd *cobra.Command, input string) error {
	d, err := duration.Parse(input)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d seconds)\n", Primary(d.String()), d.Seconds())
	return nil
}
