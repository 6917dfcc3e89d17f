package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

var (
	// ErrEmptyInput is returned when the user provides no input
	ErrEmptyInput = errors.New("empty input")

	// ErrInterrupted is returned when the user interrupts input with Ctrl+C
	ErrInterrupted = errors.New("input interrupted")
)

// Terminal reads user input from a single buffered stream. All prompts in a
// session share the buffer, so input piped in ahead of the prompts survives
// from one prompt to the next.
type Terminal struct {
	reader      *bufio.Reader
	output      io.Writer
	interactive bool
}

// NewTerminal wraps an input/output pair for prompting. When the pair is the
// process's real stdin and stdout, line prompts go through readline for
// editing and history.
func NewTerminal(input io.Reader, output io.Writer) *Terminal {
	return &Terminal{
		reader:      bufio.NewReader(input),
		output:      output,
		interactive: input == os.Stdin && output == os.Stdout,
	}
}

// Output returns the writer prompts are printed to
func (t *Terminal) Output() io.Writer {
	return t.output
}

// readLine prints the prompt text and reads one raw line from the shared
// buffer. A final line without a trailing newline still counts.
func (t *Terminal) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(t.output, prompt); err != nil {
		return "", err
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// LinePrompt asks the user for a single line of input
type LinePrompt struct {
	Prompt  string // The prompt message shown before the cursor
	Default string // Value returned when the user just presses enter
}

// Show displays the prompt and reads one line. An empty answer falls back to
// the default; with no default it returns ErrEmptyInput.
func (p *LinePrompt) Show(term *Terminal) (string, error) {
	label := p.Prompt
	if p.Default != "" {
		label = fmt.Sprintf("%s [%s]", label, p.Default)
	}

	var line string
	var err error

	if term.interactive {
		line, err = p.readWithReadline(label, term)
	} else {
		line, err = term.readLine(label + ": ")
	}
	if err != nil {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		if p.Default != "" {
			return p.Default, nil
		}
		return "", ErrEmptyInput
	}

	return line, nil
}

func (p *LinePrompt) readWithReadline(label string, term *Terminal) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          label + ": ",
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		return term.readLine(label + ": ")
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", ErrInterrupted
		}
		return "", err
	}
	return line, nil
}
