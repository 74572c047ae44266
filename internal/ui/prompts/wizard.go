package prompts

import (
	"errors"
	"strings"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/config"
	"github.com/charmbracelet/huh"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// PromptSettings walks through the editable settings, starting from current.
func PromptSettings(current config.Config) (config.Config, error) {
	updated := current

	bankName := current.Bank.Name
	level := current.Log.Level
	format := current.Log.Format
	mode := current.Shell.Mode
	logFile := current.Log.File

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bank name").
				Description("Shown in the shell greeting and farewell.").
				Value(&bankName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("bank name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Shell mode").
				Description("auto picks survey prompts on a terminal, plain lines otherwise.").
				Options(huh.NewOptions(config.ShellModeAuto, config.ShellModeSurvey, config.ShellModePlain)...).
				Value(&mode),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions(logLevels...)...).
				Value(&level),
			huh.NewSelect[string]().
				Title("Log format").
				Options(huh.NewOptions("text", "json")...).
				Value(&format),
			huh.NewInput().
				Title("Log file").
				Description("Leave empty to log to stderr.").
				Value(&logFile),
		),
	)

	if err := form.Run(); err != nil {
		return current, err
	}

	updated.Bank.Name = strings.TrimSpace(bankName)
	updated.Shell.Mode = mode
	updated.Log.Level = level
	updated.Log.Format = format
	updated.Log.File = strings.TrimSpace(logFile)

	return updated, nil
}
