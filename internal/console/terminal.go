package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// pageBreak pushes the previous screen out of view before a new one.
var pageBreak = strings.Repeat("\n", 10)

// Terminal reads one line per prompt and writes screens.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal wraps in and out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and returns the next line without its "\n" or "\r\n"
// terminator. Lines have no length limit. End of input with nothing left to
// read is reported as ErrQuit; a final unterminated line is still returned.
func (t *Terminal) Prompt(label string) (string, error) {
	if _, err := io.WriteString(t.out, "\t"+label); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrQuit
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Show writes a rendered screen.
func (t *Terminal) Show(screen string) error {
	_, err := io.WriteString(t.out, pageBreak+screen)
	return err
}

// Say writes a single indented line.
func (t *Terminal) Say(line string) error {
	_, err := io.WriteString(t.out, "\t"+line+"\n")
	return err
}
