package countdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/alpha-tango-kilo/steam-idler/internal/duration"
)

// ErrInterrupted is returned when the user aborts a countdown with ctrl+c.
var ErrInterrupted = errors.New("interrupted")

// Run draws the countdown inline on out until total has elapsed.
// in receives key presses; pass nil to ignore input.
func Run(ctx context.Context, out io.Writer, in io.Reader, label string, total duration.Duration) error {
	p := tea.NewProgram(NewModel(label, total),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(in),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("countdown: %w", err)
	}
	if m, ok := final.(Model); ok && m.Interrupted() {
		return ErrInterrupted
	}
	return nil
}

// Wait blocks until d has passed on clock or ctx is done.
// Durations beyond what a timer can hold are waited in chunks.
func Wait(ctx context.Context, clock clockwork.Clock, d duration.Duration) error {
	remaining := d
	for remaining > 0 {
		chunk := remaining.Std()
		timer := clock.NewTimer(chunk)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.Chan():
		}
		remaining -= duration.Duration(chunk / time.Second)
	}
	return nil
}
