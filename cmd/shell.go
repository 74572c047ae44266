package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/app"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/config"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/shell"
	"github.com/mattn/go-isatty"
)

type shellFlags struct {
	Script string
}

type shellRunner struct {
	cfg   *config.Config
	flags *shellFlags
}

func (r *shellRunner) Run(ctx context.Context) error {
	application, cleanup, err := app.NewApp(r.cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	in := os.Stdin
	mode := r.cfg.Shell.Mode
	if r.flags.Script != "" {
		f, err := os.Open(r.flags.Script)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
		mode = config.ShellModePlain
	}

	prompter := newPrompter(resolveMode(mode, isTerminal(in)), in, os.Stdout)
	application.Logger.WithField("mode", mode).Debug("starting shell")

	return shell.New(application.Service, prompter, os.Stdout, application.Logger).Run(ctx)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveMode turns auto into a concrete mode for the given input.
func resolveMode(mode string, interactive bool) string {
	if mode != config.ShellModeAuto {
		return mode
	}
	if interactive {
		return config.ShellModeSurvey
	}
	return config.ShellModePlain
}

func newPrompter(mode string, in io.Reader, out io.Writer) shell.Prompter {
	if mode == config.ShellModeSurvey {
		return shell.NewSurveyPrompter()
	}
	return shell.NewLinePrompter(in, out)
}
