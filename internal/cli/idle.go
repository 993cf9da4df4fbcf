package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/alpha-tango-kilo/steam-idler/internal/config"
	"github.com/alpha-tango-kilo/steam-idler/internal/countdown"
	"github.com/alpha-tango-kilo/steam-idler/internal/duration"
	"github.com/alpha-tango-kilo/steam-idler/internal/logging"
	"github.com/alpha-tango-kilo/steam-idler/internal/steam"
)

var errNoDuration = errors.New("didn't give duration")

// idleFlags carries the command-line overrides for a run.
type idleFlags struct {
	noSpinner   bool
	verbose     bool
	steamDir    string
	libraryPath string
}

// idleDeps bundles all side-effects for testability.
type idleDeps struct {
	readConfig  func() (*config.Config, error)
	initLogging func(level string, console io.Writer) error
	isTTY       func(f any) bool
	prompt      PromptFunc
	steam       func(libraryPath string) steam.Initializer
	appName     func(steamDir string, appID uint32) (string, bool)
	countdown   func(ctx context.Context, out io.Writer, in io.Reader, label string, total duration.Duration) error
	wait        func(ctx context.Context, d duration.Duration) error
}

func defaultIdleDeps() idleDeps {
	return idleDeps{
		readConfig: func() (*config.Config, error) { return config.Read(config.Dir()) },
		initLogging: func(level string, console io.Writer) error {
			return logging.Init(config.StateDir(), level, console)
		},
		isTTY:  isTerminal,
		prompt: NewDurationPromptFunc(),
		steam: func(libraryPath string) steam.Initializer {
			return steam.NewClient(libraryPath)
		},
		appName:   lookupAppName,
		countdown: countdown.Run,
		wait: func(ctx context.Context, d duration.Duration) error {
			return countdown.Wait(ctx, clockwork.NewRealClock(), d)
		},
	}
}

// isTerminal reports whether f is an *os.File attached to a terminal.
func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func lookupAppName(steamDir string, appID uint32) (string, bool) {
	fs := afero.NewOsFs()
	home, _ := os.UserHomeDir()
	root := steam.FindSteamDir(fs, home, steamDir)
	if root == "" {
		return "", false
	}
	return steam.LookupAppName(fs, steam.FindSteamAppsDir(fs, root), appID)
}

func idleFlagsFrom(cmd *cobra.Command) idleFlags {
	var f idleFlags
	f.noSpinner, _ = cmd.Flags().GetBool("no-spinner")
	f.verbose, _ = cmd.Flags().GetBool("verbose")
	f.steamDir, _ = cmd.Flags().GetString("steam-dir")
	f.libraryPath, _ = cmd.Flags().GetString("library")
	return f
}

func runIdle(cmd *cobra.Command, deps idleDeps, flags idleFlags, args []string) error {
	appID, err := steam.ParseAppID(args[0])
	if err != nil {
		return err
	}

	cfg, err := deps.readConfig()
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	interactive := cfg.Spinner && !flags.noSpinner && deps.isTTY(errOut)

	// console logs would tear the countdown line
	var console io.Writer
	if flags.verbose && !interactive {
		console = errOut
	}
	if err := deps.initLogging(cfg.LogLevel, console); err != nil {
		return err
	}

	input, err := resolveDuration(cmd, deps, cfg, args)
	if err != nil {
		return err
	}
	d, err := duration.Parse(input)
	if err != nil {
		return err
	}
	log.Debug().Uint32("appID", appID).Str("input", input).Uint64("seconds", d.Seconds()).Msg("parsed duration")

	steamDir := flags.steamDir
	if steamDir == "" {
		steamDir = cfg.SteamDir
	}
	libraryPath := flags.libraryPath
	if libraryPath == "" {
		libraryPath = cfg.LibraryPath
	}

	session, err := deps.steam(libraryPath).Init(appID)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing steam session")
		}
	}()

	if name, ok := deps.appName(steamDir, appID); ok {
		_, _ = fmt.Fprintf(errOut, "%s\n", Info(name))
	}

	label := strconv.FormatUint(uint64(appID), 10)
	log.Info().Uint32("appID", appID).Str("duration", d.String()).Bool("interactive", interactive).Msg("idling")

	if interactive {
		var in io.Reader
		if deps.isTTY(cmd.InOrStdin()) {
			in = cmd.InOrStdin()
		}
		err = deps.countdown(cmd.Context(), errOut, in, label, d)
	} else {
		_, _ = fmt.Fprintf(errOut, "Idling %s for %s\n", label, d.Debug())
		err = deps.wait(cmd.Context(), d)
	}
	if err != nil {
		log.Warn().Err(err).Uint32("appID", appID).Msg("idling stopped early")
		return err
	}

	log.Info().Uint32("appID", appID).Msg("finished idling")
	return nil
}

// resolveDuration picks the duration from the argument, the config default,
// or an interactive prompt, in that order.
func resolveDuration(cmd *cobra.Command, deps idleDeps, cfg *config.Config, args []string) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	if cfg.DefaultDuration != "" {
		return cfg.DefaultDuration, nil
	}
	if deps.isTTY(cmd.InOrStdin()) {
		return deps.prompt("How long should the app idle?")
	}
	return "", errNoDuration
}
