package tui

import (
	"fmt"
	"io"

	"github.com/handiism/mp3tools/internal/report"
)

// Printer writes report events to an output, one line per event.
//
// Messages are printed verbatim; the level only selects the color, and
// colors are dropped when the output is not a terminal.
// Verbose events are dropped unless the Printer is verbose, and are
// indented when shown.
//
// Example:
//
//	printer := NewPrinter(os.Stdout, false)
//	m := retag.NewMutator(settings, configPath, printer.Handle)
type Printer struct {
	out     io.Writer
	verbose bool
	styles  styles
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{
		out:     out,
		verbose: verbose,
		styles:  newStyles(out),
	}
}

// Handle prints e. Its signature matches report.Handler.
func (p *Printer) Handle(e report.Event) {
	if e.Level == report.LevelVerbose && !p.verbose {
		return
	}

	var line string
	switch e.Level {
	case report.LevelError:
		line = p.styles.errors.Render(e.Message)
	case report.LevelWarning:
		line = p.styles.warning.Render(e.Message)
	case report.LevelSuccess:
		line = p.styles.success.Render(e.Message)
	case report.LevelVerbose:
		line = p.styles.dim.Render("  " + e.Message)
	default:
		line = p.styles.info.Render(e.Message)
	}
	fmt.Fprintln(p.out, line)
}

// Title prints a bold heading followed by a blank line.
func (p *Printer) Title(s string) {
	fmt.Fprintln(p.out, p.styles.title.Render(s))
	fmt.Fprintln(p.out)
}

// Println prints s unstyled.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}
