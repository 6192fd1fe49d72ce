// Package tui holds the terminal front end shared by mp3list and mp3replace.
//
// It provides:
//   - Prompter: asks for a line of input or a Y/N confirmation, using a
//     Bubble Tea text input on a terminal and a plain line read otherwise
//   - Printer: renders report events with lipgloss styles
//   - Table helpers: go-pretty tables for settings and run summaries
//
// # Usage
//
//	p := tui.NewPrompter(os.Stdin, os.Stdout)
//	path, err := p.Ask("Enter the directory path to scan for MP3 files:")
//
//	printer := tui.NewPrinter(os.Stdout, verbose)
//	scanner := inventory.NewScanner(settings, printer.Handle)
package tui
