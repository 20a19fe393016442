package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// ErrEmptyInput is returned by Ask for a blank answer
var ErrEmptyInput = errors.New("empty input")

type line struct {
	text string
	err  error
}

// Console prints status lines and reads user answers. Input is read by a
// single background goroutine started on the first Ask.
type Console struct {
	in          *bufio.Reader
	lines       chan line
	startReader sync.Once
	out         io.Writer
	errOut      io.Writer
	noColor     bool
}

// New creates a console on the given streams
func New(in io.Reader, out, errOut io.Writer) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		lines:  make(chan line),
		out:    out,
		errOut: errOut,
	}
}

// SetNoColor disables ANSI colors regardless of the terminal
func (c *Console) SetNoColor(v bool) {
	c.noColor = v
}

func (c *Console) paint(attrs ...color.Attribute) *color.Color {
	p := color.New(attrs...)
	if c.noColor {
		p.DisableColor()
	}
	return p
}

// Info prints an [INFO] status line
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.out, c.paint(color.FgCyan).Sprint("[INFO]"), fmt.Sprintf(format, args...))
}

// Error prints an [ERROR] line to the error stream
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.errOut, c.paint(color.FgRed, color.Bold).Sprint("[ERROR]"), fmt.Sprintf(format, args...))
}

// Println prints a plain line
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Card prints a drawn card heading followed by its meaning
func (c *Console) Card(name, meaning string) {
	fmt.Fprintln(c.out, c.paint(color.FgMagenta).Sprint("==>"), c.paint(color.FgHiWhite).Sprint(name))
	fmt.Fprintln(c.out, meaning)
}

// Ask prints label as an [INFO] line and returns the next input line, trimmed.
// A blank line yields ErrEmptyInput; once input is exhausted the error also
// matches io.EOF. Cancelling ctx abandons the read and returns ctx.Err().
func (c *Console) Ask(ctx context.Context, label string) (string, error) {
	c.Info("%s", label)
	c.startReader.Do(func() { go c.readLines() })

	var l line
	var ok bool
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok = <-c.lines:
	}
	if !ok {
		return "", fmt.Errorf("%w: %w", ErrEmptyInput, io.EOF)
	}
	if l.err != nil && !errors.Is(l.err, io.EOF) {
		return "", fmt.Errorf("read input: %w", l.err)
	}

	answer := strings.TrimSpace(l.text)
	if answer == "" {
		if l.err != nil {
			return "", fmt.Errorf("%w: %w", ErrEmptyInput, io.EOF)
		}
		return "", ErrEmptyInput
	}
	return answer, nil
}

// AskRetry is Ask with up to attempts tries on blank input
func (c *Console) AskRetry(ctx context.Context, label string, attempts int) (string, error) {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		var answer string
		answer, err = c.Ask(ctx, label)
		if err == nil {
			return answer, nil
		}
		if !errors.Is(err, ErrEmptyInput) || errors.Is(err, io.EOF) {
			return "", err
		}
	}
	return "", err
}

// readLines feeds c.lines until the input fails or ends
func (c *Console) readLines() {
	defer close(c.lines)
	for {
		text, err := c.in.ReadString('\n')
		c.lines <- line{text: text, err: err}
		if err != nil {
			return
		}
	}
}
