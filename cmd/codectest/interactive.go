package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/actor-codec/envelope"
	"github.com/wippyai/actor-codec/registry"
	"github.com/wippyai/actor-codec/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	requiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	hexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateBrowse browserState = iota
	stateDetail
)

type browserModel struct {
	reg      *registry.Registry
	codec    *envelope.Codec
	ops      []registry.Operation
	visible  []registry.Operation
	samples  map[string]sample
	filter   textinput.Model
	selected int
	state    browserState
}

func newBrowserModel(reg *registry.Registry) *browserModel {
	filter := textinput.New()
	filter.Placeholder = "filter operations"
	filter.Prompt = "/ "
	filter.Width = 40

	index := make(map[string]sample)
	for _, s := range samples() {
		index[s.op+"/"+s.side] = s
	}

	m := &browserModel{
		reg:     reg,
		codec:   envelope.New(reg),
		ops:     reg.Operations(),
		samples: index,
		filter:  filter,
	}
	m.applyFilter()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for _, op := range m.ops {
		if query == "" || strings.Contains(strings.ToLower(op.Name), query) {
			m.visible = append(m.visible, op)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if !m.filter.Focused() {
				return m, tea.Quit
			}

		case "up", "ctrl+k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "ctrl+j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil

		case "/":
			if m.state == stateBrowse && !m.filter.Focused() {
				m.filter.Focus()
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if m.filter.Focused() {
					m.filter.Blur()
				} else if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateBrowse
			}
			return m, nil

		case "esc":
			switch m.state {
			case stateBrowse:
				if m.filter.Focused() {
					m.filter.Blur()
				} else if m.filter.Value() != "" {
					m.filter.SetValue("")
					m.applyFilter()
				}
			case stateDetail:
				m.state = stateBrowse
			}
			return m, nil
		}
	}

	if m.state == stateBrowse && m.filter.Focused() {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Catalog Browser"))
	b.WriteString(fmt.Sprintf(" %d operations\n\n", m.reg.Len()))

	switch m.state {
	case stateBrowse:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no operations match"))
			b.WriteString("\n")
		}
		for i, op := range m.visible {
			line := m.formatOp(op)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))

	case stateDetail:
		op := m.visible[m.selected]
		b.WriteString(opStyle.Render(op.Name))
		b.WriteString("\n\n")
		b.WriteString("Request  ")
		b.WriteString(m.formatType(op.Request))
		b.WriteString("\nResponse ")
		b.WriteString(m.formatType(op.Response))
		b.WriteString(m.formatSample(op.Name, sideRequest))
		b.WriteString(m.formatSample(op.Name, sideResponse))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *browserModel) formatOp(op registry.Operation) string {
	return opStyle.Render(op.Name) +
		"  " + typeStyle.Render(op.Request.Name()) +
		" -> " + typeStyle.Render(op.Response.Name())
}

func (m *browserModel) formatType(t *schema.Type) string {
	var b strings.Builder
	b.WriteString(typeStyle.Render(t.Name()))
	fields := t.Fields()
	if len(fields) == 0 {
		b.WriteString(" (no fields)")
		return b.String()
	}
	for _, f := range fields {
		b.WriteString("\n    ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Kind.String())
		if f.Required {
			b.WriteString(" ")
			b.WriteString(requiredStyle.Render("required"))
		}
	}
	return b.String()
}

// formatSample renders the canonical wire bytes of the reference
// message for one side of the operation, when one exists.
func (m *browserModel) formatSample(opName, side string) string {
	s, ok := m.samples[opName+"/"+side]
	if !ok {
		return ""
	}
	data, err := encodeSample(m.codec, s)
	if err != nil {
		return "\n\n" + errorStyle.Render(fmt.Sprintf("sample %s: %v", side, err))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\nSample %s (%d bytes)\n", side, len(data))
	dump := hex.EncodeToString(data)
	for i := 0; i < len(dump); i += 64 {
		end := i + 64
		if end > len(dump) {
			end = len(dump)
		}
		b.WriteString("    ")
		b.WriteString(hexStyle.Render(dump[i:end]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func runInteractive(reg *registry.Registry) error {
	p := tea.NewProgram(newBrowserModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
