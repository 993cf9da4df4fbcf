package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/alpha-tango-kilo/steam-idler/internal/config"
)

var configPathCmd = LeafCommand{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.Path(config.Dir()))
		return nil
	},
}.Build()

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd, config.Dir())
	},
}.Build()

var configInitCmd = LeafCommand{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "force", Usage: "overwrite an existing config file"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return runConfigInit(cmd, config.Dir(), force)
	},
}.Build()

var configCmd = GroupCommand{
	Use:         "config",
	Short:       "Inspect the steam-idler configuration",
	Subcommands: []*cobra.Command{configPathCmd, configShowCmd, configInitCmd},
}.Build()

func runConfigShow(cmd *cobra.Command, dir string) error {
	cfg, err := config.Read(dir)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s", Silent("# "+config.Path(dir)), data)
	return nil
}

func runConfigInit(cmd *cobra.Command, dir string, force bool) error {
	path := config.Path(dir)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}
	cfg := config.Default()
	if err := config.Write(dir, &cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("wrote"), Primary(path))
	return nil
}
