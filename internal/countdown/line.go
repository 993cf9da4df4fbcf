package countdown

import (
	"fmt"

	"github.com/alpha-tango-kilo/steam-idler/internal/duration"
)

var spinner = []rune{'|', '/', '-', '\\'}

// Line renders one frame of the countdown after elapsed seconds, e.g.
// "Idling 440 for 1h: 20m, 33.3% /".
func Line(label string, total duration.Duration, elapsed uint64) string {
	return fmt.Sprintf("Idling %s for %s: %s, %.1f%% %c",
		label,
		total,
		duration.FromSeconds(elapsed),
		Percent(total, elapsed),
		spinner[elapsed%uint64(len(spinner))],
	)
}

// Percent returns elapsed as a percentage of total. A zero total is complete.
func Percent(total duration.Duration, elapsed uint64) float64 {
	if total == 0 {
		return 100
	}
	return float64(elapsed) / float64(total.Seconds()) * 100
}
