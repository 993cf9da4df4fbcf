package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha-tango-kilo/steam-idler/internal/config"
	"github.com/alpha-tango-kilo/steam-idler/internal/duration"
	"github.com/alpha-tango-kilo/steam-idler/internal/steam"
)

type fakeSession struct{ closed int }

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeSteam struct {
	initErr     error
	appIDs      []uint32
	libraryPath string
	session     *fakeSession
}

func (f *fakeSteam) Init(appID uint32) (steam.Session, error) {
	f.appIDs = append(f.appIDs, appID)
	if f.initErr != nil {
		return nil, f.initErr
	}
	return f.session, nil
}

type idleRecorder struct {
	steam        *fakeSteam
	cfg          config.Config
	tty          bool
	waited       []duration.Duration
	counted      []duration.Duration
	labels       []string
	logLevel     string
	logConsole   io.Writer
	prompted     bool
	promptAnswer string
}

func setupIdleTest(t *testing.T) (*idleRecorder, idleDeps) {
	t.Helper()
	rec := &idleRecorder{
		steam: &fakeSteam{session: &fakeSession{}},
		cfg:   config.Default(),
	}
	deps := idleDeps{
		readConfig: func() (*config.Config, error) {
			cfg := rec.cfg
			return &cfg, nil
		},
		initLogging: func(level string, console io.Writer) error {
			rec.logLevel = level
			rec.logConsole = console
			return nil
		},
		isTTY: func(any) bool { return rec.tty },
		prompt: func(string) (string, error) {
			rec.prompted = true
			return rec.promptAnswer, nil
		},
		steam: func(libraryPath string) steam.Initializer {
			rec.steam.libraryPath = libraryPath
			return rec.steam
		},
		appName: func(string, uint32) (string, bool) { return "", false },
		countdown: func(_ context.Context, _ io.Writer, _ io.Reader, label string, total duration.Duration) error {
			rec.labels = append(rec.labels, label)
			rec.counted = append(rec.counted, total)
			return nil
		},
		wait: func(_ context.Context, d duration.Duration) error {
			rec.waited = append(rec.waited, d)
			return nil
		},
	}
	return rec, deps
}

func execIdle(deps idleDeps, flags idleFlags, args ...string) (string, error) {
	stderr := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(""))
	err := runIdle(cmd, deps, flags, args)
	return stderr.String(), err
}

func TestIdleNonInteractive(t *testing.T) {
	rec, deps := setupIdleTest(t)

	out, err := execIdle(deps, idleFlags{}, "440", "1h20m")

	require.NoError(t, err)
	assert.Equal(t, "Idling 440 for 4800s\n", out)
	assert.Equal(t, []uint32{440}, rec.steam.appIDs)
	assert.Equal(t, []duration.Duration{4800}, rec.waited)
	assert.Empty(t, rec.counted)
	assert.Equal(t, 1, rec.steam.session.closed)
}

func TestIdleInteractive(t *testing.T) {
	rec, deps := setupIdleTest(t)
	rec.tty = true

	out, err := execIdle(deps, idleFlags{}, "730", "2d")

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []string{"730"}, rec.labels)
	assert.Equal(t, []duration.Duration{2 * 86400}, rec.counted)
	assert.Empty(t, rec.waited)
	assert.Equal(t, 1, rec.steam.session.closed)
}

func TestIdleNoSpinnerFlag(t *testing.T) {
	rec, deps := setupIdleTest(t)
	rec.tty = true

	_, err := execIdle(deps, idleFlags{noSpinner: true}, "440", "5m")

	require.NoError(t, err)
	assert.Empty(t, rec.counted)
	assert.Equal(t, []duration.Duration{300}, rec.waited)
}

func TestIdleSpinnerDisabledInConfig(t *testing.T) {
	rec, deps := setupIdleTest(t)
	rec.tty = true
	rec.cfg.Spinner = false

	_, err := execIdle(deps, idleFlags{}, "440", "5m")

	require.NoError(t, err)
	assert.Empty(t, rec.counted)
	assert.Len(t, rec.waited, 1)
}

func TestIdleShowsAppName(t *testing.T) {
	_, deps := setupIdleTest(t)
	var gotDir string
	deps.appName = func(steamDir string, appID uint32) (string, bool) {
		gotDir = steamDir
		return "Team Fortress 2", appID == 440
	}

	out, err := execIdle(deps, idleFlags{steamDir: "/games/steam"}, "440", "1s")

	require.NoError(t, err)
	assert.Contains(t, out, "Team Fortress 2")
	assert.Contains(t, out, "Idling 440 for 1s")
	assert.Equal(t, "/games/steam", gotDir)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Team Fortress 2")
	assert.Equal(t, "Idling 440 for 1s", lines[1])
}

func TestIdleInvalidDurationAbortsBeforeSteam(t *testing.T) {
	tests := []struct {
		input  string
		target error
	}{
		{"asdf", duration.ErrUnexpected},
		{"365dm", duration.ErrValueless},
		{"1H", duration.ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rec, deps := setupIdleTest(t)

			_, err := execIdle(deps, idleFlags{}, "440", tt.input)

			assert.ErrorIs(t, err, tt.target)
			assert.Empty(t, rec.steam.appIDs)
			assert.Empty(t, rec.waited)
			assert.Empty(t, rec.counted)
		})
	}
}

func TestIdleInvalidAppID(t *testing.T) {
	rec, deps := setupIdleTest(t)

	_, err := execIdle(deps, idleFlags{}, "tf2", "1h")

	assert.ErrorContains(t, err, "invalid app ID")
	assert.Empty(t, rec.steam.appIDs)
}

func TestIdleSteamInitFails(t *testing.T) {
	rec, deps := setupIdleTest(t)
	rec.steam.initErr = steam.ErrInitFailed

	_, err := execIdle(deps, idleFlags{}, "440", "1h")

	assert.ErrorIs(t, err, steam.ErrInitFailed)
	assert.Empty(t, rec.waited)
	assert.Equal(t, 0, rec.steam.session.closed)
}

func TestIdleLibraryPathPrecedence(t *testing.T) {
	rec, deps := setupIdleTest(t)
	rec.cfg.LibraryPath = "/from/config.so"

	_, err := execIdle(deps, idleFlags{}, "440", "1s")
	require.NoError(t, err)
	assert.Equal(t, "/from/config.so", rec.steam.libraryPath)

	_, err = execIdle(deps, idleFlags{libraryPath: "/from/flag.so"}, "440", "1s")
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.so", rec.steam.libraryPath)
}

func TestIdleDefaultDurationFromConfig(t *testing.T) {
	rec, deps := setupIdleTest(t)
	rec.cfg.DefaultDuration = "2h"

	_, err := execIdle(deps, idleFlags{}, "440")

	require.NoError(t, err)
	assert.Equal(t, []duration.Duration{7200}, rec.waited)
	assert.False(t, rec.prompted)
}

func TestIdlePromptsForDuration(t *testing.T) {
	rec, deps := setupIdleTest(t)
	rec.tty = true
	rec.promptAnswer = "30m"

	_, err := execIdle(deps, idleFlags{}, "440")

	require.NoError(t, err)
	assert.True(t, rec.prompted)
	assert.Equal(t, []duration.Duration{1800}, rec.counted)
}

func TestIdleMissingDuration(t *testing.T) {
	rec, deps := setupIdleTest(t)

	_, err := execIdle(deps, idleFlags{}, "440")

	assert.ErrorIs(t, err, errNoDuration)
	assert.Empty(t, rec.steam.appIDs)
}

func TestIdleVerboseLogsOnlyWhenNotInteractive(t *testing.T) {
	rec, deps := setupIdleTest(t)
	rec.cfg.LogLevel = "debug"

	_, err := execIdle(deps, idleFlags{verbose: true}, "440", "1s")
	require.NoError(t, err)
	assert.NotNil(t, rec.logConsole)
	assert.Equal(t, "debug", rec.logLevel)

	rec.tty = true
	_, err = execIdle(deps, idleFlags{verbose: true}, "440", "1s")
	require.NoError(t, err)
	assert.Nil(t, rec.logConsole)
}

func TestIdleWaitErrorPropagates(t *testing.T) {
	rec, deps := setupIdleTest(t)
	deps.wait = func(context.Context, duration.Duration) error { return context.Canceled }

	_, err := execIdle(deps, idleFlags{}, "440", "1h")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, rec.steam.session.closed)
}

func TestIsTerminalRejectsNonFiles(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))
	assert.False(t, isTerminal(nil))
}
