package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ui"
)

type MenuOption struct {
	Code  string
	Label string
}

// Prompter is where the shell reads its input from. Both methods return
// io.EOF once the input is exhausted.
type Prompter interface {
	// Menu shows title and the options and returns the raw choice.
	Menu(title string, options []MenuOption) (string, error)
	// Line shows prompt, if any, and returns one line of input.
	Line(prompt string) (string, error)
}

// LinePrompter reads plain lines, for pipes and script files.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Menu(title string, options []MenuOption) (string, error) {
	fmt.Fprintln(p.out, title)
	for _, o := range options {
		fmt.Fprintf(p.out, "[%s] %s\n", o.Code, o.Label)
	}
	return p.Line("")
}

func (p *LinePrompter) Line(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}
	fmt.Fprint(p.out, "> ")

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// SurveyPrompter asks through survey on an interactive terminal.
type SurveyPrompter struct{}

func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

func (p *SurveyPrompter) Menu(title string, options []MenuOption) (string, error) {
	labels := make([]string, len(options))
	codes := make(map[string]string, len(options))
	for i, o := range options {
		labels[i] = fmt.Sprintf("[%s] %s", o.Code, o.Label)
		codes[labels[i]] = o.Code
	}

	var choice string
	prompt := &survey.Select{
		Message: title,
		Options: labels,
	}
	if err := survey.AskOne(prompt, &choice, ui.IconOption()); err != nil {
		return "", err
	}
	return codes[choice], nil
}

func (p *SurveyPrompter) Line(prompt string) (string, error) {
	if prompt == "" {
		prompt = ">"
	}

	var line string
	if err := survey.AskOne(&survey.Input{Message: prompt}, &line, ui.IconOption()); err != nil {
		return "", err
	}
	return line, nil
}
