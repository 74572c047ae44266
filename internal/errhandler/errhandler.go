package errhandler

import (
	"context"
	"errors"
	"os"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err comes from the user cancelling a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}

// HandleError prints err and exits. Interrupts exit cleanly.
func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Capitalize(err.Error()))
	os.Exit(1)
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
