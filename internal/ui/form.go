package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"roost/internal/prompt"
	"roost/internal/trace"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

type formModel struct {
	title  string
	fields prompt.FieldSet
	index  int
	vals   prompt.Values
	input  textinput.Model
	prog   progress.Model
	reject string
	err    error
	width  int
	tracer trace.Tracer
}

// newFormModel returns a Bubble Tea model that asks fields one at a time,
// applying the same defaults and validation as the line collector.
func newFormModel(title string, fields prompt.FieldSet, tracer trace.Tracer) *formModel {
	in := textinput.New()
	in.Prompt = "> "
	in.Focus()

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 40

	if tracer == nil {
		tracer = trace.Nop
	}
	m := &formModel{
		title:  title,
		fields: fields,
		vals:   make(prompt.Values, len(fields)),
		input:  in,
		prog:   prog,
		width:  80,
		tracer: tracer,
	}
	m.preparePlaceholder()
	return m
}

func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.err = prompt.ErrInterrupted
			return m, tea.Quit
		case tea.KeyCtrlD, tea.KeyEsc:
			m.err = prompt.ErrInputClosed
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = min(msg.Width-4, 60)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *formModel) submit() tea.Cmd {
	if m.done() {
		return tea.Quit
	}
	f := m.fields[m.index]
	v, err := f.Accept(m.input.Value(), m.vals)
	if err != nil {
		var fe *prompt.FieldError
		if errors.As(err, &fe) {
			m.reject = "ERR: " + fe.Error()
			return nil
		}
		m.err = err
		return tea.Quit
	}

	m.vals[f.Name] = v
	trace.Point(m.tracer, trace.ScopeField, "field:"+f.Name, v)
	m.reject = ""
	m.index++
	m.input.Reset()
	if m.done() {
		return tea.Quit
	}
	m.preparePlaceholder()
	return nil
}

func (m *formModel) preparePlaceholder() {
	m.input.Placeholder = ""
	if m.done() {
		return
	}
	if def, ok := m.fields[m.index].DefaultValue(m.vals); ok {
		m.input.Placeholder = def
	}
}

func (m *formModel) done() bool {
	return m.index >= len(m.fields)
}

func (m *formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.prog.ViewAs(m.ratio()))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, f := range m.fields {
		labelWidth = max(labelWidth, runewidth.StringWidth(f.Label))
	}
	valueWidth := max(m.width-labelWidth-6, 10)

	for i := 0; i < m.index && i < len(m.fields); i++ {
		f := m.fields[i]
		label := runewidth.FillRight(f.Label, labelWidth)
		fmt.Fprintf(&b, "  %s  %s\n", labelStyle.Render(label), answerStyle.Render(truncate(m.vals[f.Name], valueWidth)))
		if f.Ruler {
			var ruler strings.Builder
			if err := prompt.WriteRuler(&ruler, m.vals[f.Name]); err == nil {
				b.WriteString(hintStyle.Render(strings.TrimRight(ruler.String(), "\n")))
				b.WriteString("\n")
			}
		}
	}

	if !m.done() {
		f := m.fields[m.index]
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(f.Label))
		if def, ok := f.DefaultValue(m.vals); ok {
			b.WriteString(hintStyle.Render(" (default=" + def + ")"))
		}
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.reject != "" {
		b.WriteString(errorStyle.Render(m.reject))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *formModel) ratio() float64 {
	if len(m.fields) == 0 {
		return 1
	}
	return float64(m.index) / float64(len(m.fields))
}

// Result reports the collected answers, or why collection stopped.
func (m *formModel) Result() (prompt.Values, error) {
	if m.err != nil {
		return m.vals, m.err
	}
	if !m.done() {
		return m.vals, prompt.ErrInputClosed
	}
	return m.vals, nil
}

// RunForm drives the form on in/out until every field is answered.
func RunForm(ctx context.Context, title string, fields prompt.FieldSet, in io.Reader, out io.Writer) (prompt.Values, error) {
	model := newFormModel(title, fields, trace.FromContext(ctx))
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return model.vals, fmt.Errorf("%w: %w", prompt.ErrInterrupted, ctx.Err())
		}
		return model.vals, fmt.Errorf("form: %w", err)
	}
	fm, ok := final.(*formModel)
	if !ok {
		return nil, fmt.Errorf("form: unexpected model %T", final)
	}
	return fm.Result()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
