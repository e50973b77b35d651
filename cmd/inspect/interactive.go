package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bytelayout/bytelayout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	savedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	filename string
	layout   *bytelayout.Layout
	view     *bytelayout.View
	input    textinput.Model
	status   string
	statusIs error
	selected int
	dirty    bool
	state    modelState
}

type modelState int

const (
	stateSelectField modelState = iota
	stateEditField
)

func newInspectModel(filename string, layout *bytelayout.Layout, data []byte) *inspectModel {
	return &inspectModel{
		filename: filename,
		layout:   layout,
		view:     layout.View(bytelayout.Borrow(data)),
		state:    stateSelectField,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectField {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectField && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectField && m.selected < m.layout.NumFields()-1 {
				m.selected++
			}

		case "w":
			if m.state == stateSelectField {
				m.save()
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectField:
				if m.layout.NumFields() == 0 {
					return m, nil
				}
				m.prepareInput()
				m.state = stateEditField
				return m, nil

			case stateEditField:
				m.applyEdit()
				m.state = stateSelectField
				return m, nil
			}

		case "esc":
			if m.state == stateEditField {
				m.state = stateSelectField
				m.status = ""
				m.statusIs = nil
			}
		}
	}

	if m.state == stateEditField {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) prepareInput() {
	f := m.layout.FieldAt(m.selected)
	ti := textinput.New()
	ti.Placeholder = f.Kind().String()
	ti.Prompt = f.Name() + ": "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *inspectModel) applyEdit() {
	fv := m.view.FieldAt(m.selected)
	f := fv.Field()

	value, err := parseValue(f, m.input.Value())
	if err != nil {
		m.status = fmt.Sprintf("parse %s: %v", f.Name(), err)
		m.statusIs = err
		return
	}
	if err := fv.WriteAny(value); err != nil {
		m.status = fmt.Sprintf("write %s: %v", f.Name(), err)
		m.statusIs = err
		return
	}
	m.dirty = true
	m.status = fmt.Sprintf("set %s", f.Name())
	m.statusIs = nil
}

func (m *inspectModel) save() {
	if err := os.WriteFile(m.filename, m.view.Bytes(), 0o644); err != nil {
		m.status = fmt.Sprintf("save: %v", err)
		m.statusIs = err
		return
	}
	m.dirty = false
	m.status = fmt.Sprintf("wrote %s", m.filename)
	m.statusIs = nil
}

func (m *inspectModel) View() string {
	var b strings.Builder

	title := m.filename
	if m.dirty {
		title += " *"
	}
	b.WriteString(titleStyle.Render("Layout Inspector"))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n\n")

	for i := 0; i < m.layout.NumFields(); i++ {
		fv := m.view.FieldAt(i)
		line := m.formatField(fv)
		if i == m.selected && m.state == stateSelectField {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.state == stateEditField {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • w write file • q quit"))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusIs != nil {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(savedStyle.Render(m.status))
		}
	}

	return b.String()
}

func (m *inspectModel) formatField(fv bytelayout.FieldView) string {
	f := fv.Field()

	var rendered string
	if value, err := fv.ReadAny(); err != nil {
		rendered = errorStyle.Render(err.Error())
	} else {
		rendered = formatValue(f, value)
	}

	return fmt.Sprintf("%s %s @%d+%d  %s",
		fieldStyle.Render(fmt.Sprintf("%-20s", f.Name())),
		kindStyle.Render(fmt.Sprintf("%-6s", f.Kind())),
		f.Offset(), fv.Size(), rendered)
}

func runInteractive(filename string, layout *bytelayout.Layout, data []byte) error {
	p := tea.NewProgram(newInspectModel(filename, layout, data), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
