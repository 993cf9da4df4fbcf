package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "steam-idler <app-id> [duration]",
		Short: "Keep a Steam app marked as running for a while",
		Example: "  steam-idler 440 1h30m\n" +
			"  steam-idler 730 2d --no-spinner",
		Args: cobra.RangeArgs(1, 2),
		BoolFlags: []BoolFlag{
			{Name: "no-spinner", Usage: "print a single line instead of a live countdown"},
			{Name: "verbose", Shorthand: "v", Usage: "also write logs to stderr"},
		},
		StrFlags: []StringFlag{
			{Name: "steam-dir", Usage: "Steam install directory used to look up app names"},
			{Name: "library", Usage: "path to the Steamworks shared library"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdle(cmd, defaultIdleDeps(), idleFlagsFrom(cmd), args)
		},
	}.Build()

	cmd.SilenceErrors = true
	cmd.AddCommand(parseCmd)
	cmd.AddCommand(configCmd)
	cmd.AddCommand(versionCmd)
	return cmd
}

var rootCmd = newRootCmd()

// Execute runs the CLI. SIGINT and SIGTERM cancel the command context so an
// idle in progress can shut the Steam session down cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "%s\n", Error("Error: "+err.Error()))
	}
	return err
}
