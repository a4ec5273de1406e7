package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Display holds the user-facing output preferences.
type Display struct {
	// Quiet suppresses all status notifications.
	Quiet bool

	// Monochrome disables colour codes.
	Monochrome bool
}

// Printer writes user-facing status notifications.
// It is a value type: copies share the underlying writers.
type Printer struct {
	Display Display

	out io.Writer
	err io.Writer

	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	failureStyle lipgloss.Style
}

// NewPrinter creates a Printer. Nil writers default to os.Stdout and os.Stderr.
func NewPrinter(d Display, stdout, stderr io.Writer) Printer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	outRenderer := lipgloss.NewRenderer(stdout)
	errRenderer := lipgloss.NewRenderer(stderr)

	return Printer{
		Display:      d,
		out:          stdout,
		err:          stderr,
		successStyle: outRenderer.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		infoStyle:    outRenderer.NewStyle().Foreground(lipgloss.Color("39")),
		failureStyle: errRenderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Success prints a positive status line to stdout.
func (p Printer) Success(format string, args ...any) {
	if p.Display.Quiet {
		return
	}
	p.print(p.out, p.successStyle, "✓", format, args...)
}

// Info prints a neutral status line to stdout.
func (p Printer) Info(format string, args ...any) {
	if p.Display.Quiet {
		return
	}
	p.print(p.out, p.infoStyle, "ℹ", format, args...)
}

// Failure prints a negative status line to stderr.
func (p Printer) Failure(format string, args ...any) {
	if p.Display.Quiet {
		return
	}
	p.print(p.err, p.failureStyle, "✗", format, args...)
}

// Error prints an error to stderr regardless of Quiet.
func (p Printer) Error(format string, args ...any) {
	p.print(p.err, p.failureStyle, "✗", format, args...)
}

// Stderr returns the writer used for negative output.
func (p Printer) Stderr() io.Writer {
	return p.err
}

func (p Printer) print(w io.Writer, style lipgloss.Style, icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.Display.Monochrome {
		fmt.Fprintf(w, "%s %s\n", icon, msg)
		return
	}
	fmt.Fprintln(w, style.Render(icon+" "+msg))
}
