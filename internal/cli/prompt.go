package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/alpha-tango-kilo/steam-idler/internal/duration"
)

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

// NewDurationPromptFunc creates a PromptFunc using huh's input component
// that only accepts strings duration.Parse understands.
func NewDurationPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Placeholder("1h30m").
			Validate(func(s string) error {
				_, err := duration.Parse(s)
				return err
			}).
			Value(&result).
			Run()
		return result, err
	}
}
