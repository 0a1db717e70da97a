// Package prompt implements line-oriented questions and numbered single-choice menus
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when input ends before a question is answered
var ErrNoInput = errors.New("no input")

// Prompter reads answers from in and writes questions to out
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a prompter over the given input and output
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask prints label and returns the trimmed answer. Empty answers are asked again.
func (p *Prompter) Ask(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s ", label)

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// Select prints label followed by a numbered list of choices and returns the
// index of the chosen entry. Invalid answers are reported and asked again.
func (p *Prompter) Select(label string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("nothing to choose from")
	}

	fmt.Fprintln(p.out, label)
	width := len(strconv.Itoa(len(choices)))
	for i, choice := range choices {
		fmt.Fprintf(p.out, "  %*d) %s\n", width, i+1, choice)
	}

	for {
		fmt.Fprintf(p.out, "Choice [1-%d]: ", len(choices))

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(choices) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(choices))
			continue
		}
		return n - 1, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		fmt.Fprintln(p.out)
		return "", ErrNoInput
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
