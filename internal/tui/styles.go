package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styles is the set of lipgloss styles bound to one output.
type styles struct {
	title   lipgloss.Style
	prompt  lipgloss.Style
	success lipgloss.Style
	errors  lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	dim     lipgloss.Style
}

// newStyles creates styles for w. Colors are dropped automatically when w
// is not a terminal.
func newStyles(w io.Writer) styles {
	return stylesFor(lipgloss.NewRenderer(w))
}

func stylesFor(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")),
		prompt: r.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")),
		success: r.NewStyle().
			Foreground(lipgloss.Color("#95E1A3")),
		errors: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFE66D")),
		info: r.NewStyle().
			Foreground(lipgloss.Color("#A8DADC")),
		dim: r.NewStyle().
			Foreground(lipgloss.Color("#6C757D")),
	}
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
