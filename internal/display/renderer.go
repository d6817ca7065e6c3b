// Package display renders formatted activity lines for the CLI and hosts
// the standard logger used across the program.
package display

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// separatorWidth is the width of the rule printed around the output.
const separatorWidth = 40

// Renderer handles rendering display lines to an output stream.
// This interface follows Interface Segregation Principle (SOLID-I).
type Renderer interface {
	Render(lines []string) error
}

// TextRenderer implements Renderer for plain-text terminal output.
type TextRenderer struct {
	out io.Writer
}

// NewTextRenderer creates a renderer writing to out.
func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out}
}

// Render prints the lines between separator rules. An empty set is a
// successful, degraded display - not an error.
func (r *TextRenderer) Render(lines []string) error {
	separator := strings.Repeat("-", separatorWidth)

	if _, err := fmt.Fprintln(r.out, separator); err != nil {
		return err
	}
	if len(lines) == 0 {
		if _, err := fmt.Fprintln(r.out, "No events to display."); err != nil {
			return err
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.out, separator)
	return err
}

// Logger interface for logging operations (Interface Segregation Principle).
type Logger interface {
	Printf(format string, v ...interface{})
}

// StdLogger wraps the standard log package to implement Logger.
// Diagnostics go to stderr so they never mix with the rendered output.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger creates a logger writing to w (typically os.Stderr).
func NewStdLogger(w io.Writer) *StdLogger {
	return &StdLogger{l: log.New(w, "", log.LstdFlags)}
}

func (l *StdLogger) Printf(format string, v ...interface{}) {
	l.l.Printf(format, v...)
}
