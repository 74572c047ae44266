package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func L1Title(format string, a ...interface{}) string {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	return style.Sprint(paddedText)
}

func PrintL1Title(format string, a ...interface{}) {
	pterm.Println(L1Title(format, a...))
}
