package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user leaves a prompt with esc or
// ctrl+c, or input ends before a line is entered.
var ErrCancelled = errors.New("cancelled by user")

// Prompter asks the user for input.
//
// On a terminal each question runs a small Bubble Tea program with a text
// input. Otherwise the question is printed and one line is read from the
// input, which keeps the tools scriptable.
//
// Example:
//
//	p := NewPrompter(os.Stdin, os.Stdout)
//	ok, err := p.Confirm("Proceed with these settings? (Y/N)")
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool

	// reader buffers non-interactive input across questions.
	reader *bufio.Reader
}

// NewPrompter creates a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:          in,
		out:         out,
		interactive: IsTerminal(in) && IsTerminal(out),
	}
}

// Ask prints question and returns the trimmed answer.
func (p *Prompter) Ask(question string) (string, error) {
	if p.interactive {
		return p.askTerminal(question)
	}
	return p.askLine(question)
}

// Confirm asks a yes/no question. Only "y" and "yes", in any case, count
// as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// IsYes reports whether answer is an affirmative reply.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func (p *Prompter) askLine(question string) (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}

	fmt.Fprint(p.out, question+" ")
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrCancelled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) askTerminal(question string) (string, error) {
	prog := tea.NewProgram(
		newPromptModel(question, newStyles(p.out)),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		return "", err
	}

	m := final.(promptModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	fmt.Fprintln(p.out, question+" "+m.Value())
	return m.Value(), nil
}

// promptModel is the Bubble Tea model behind an interactive question.
type promptModel struct {
	question  string
	input     textinput.Model
	styles    styles
	done      bool
	cancelled bool
}

func newPromptModel(question string, st styles) promptModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	return promptModel{
		question: question,
		input:    ti,
		styles:   st,
	}
}

// Value returns the trimmed text entered so far.
func (m promptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Init starts the cursor blinking.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the question and the input. It is empty once the program
// has finished, so the answer is echoed only once.
func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.prompt.Render(m.question))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render("enter: confirm • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
