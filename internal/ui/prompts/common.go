package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}
