package countdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alpha-tango-kilo/steam-idler/internal/duration"
)

const tickInterval = time.Second

type tickMsg time.Time

// Model is a single-line bubbletea countdown. It renders once per second
// for every elapsed value from 0 to total inclusive, then quits.
type Model struct {
	label       string
	total       duration.Duration
	elapsed     uint64
	done        bool
	interrupted bool
}

func NewModel(label string, total duration.Duration) Model {
	return Model{label: label, total: total}
}

func (m Model) Elapsed() uint64   { return m.elapsed }
func (m Model) Done() bool        { return m.done }
func (m Model) Interrupted() bool { return m.interrupted }

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.interrupted = true
			return m, tea.Quit
		}
	case tickMsg:
		if m.elapsed >= m.total.Seconds() {
			m.done = true
			return m, tea.Quit
		}
		m.elapsed++
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	view := Line(m.label, m.total, m.elapsed) + " "
	if m.done || m.interrupted {
		// the renderer clears the cursor line on exit, so keep the last frame above it
		view += "\n"
	}
	return view
}
