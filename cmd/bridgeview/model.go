package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/jnibridge/cjni"
	d "github.com/wippyai/jnibridge/descriptor"
	"github.com/wippyai/jnibridge/ir"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	stubStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateSource
)

// chrome is the number of lines around the list or source pane.
const chrome = 5

type model struct {
	lib      d.Library
	unit     *ir.Unit
	filter   textinput.Model
	source   viewport.Model
	visible  []int
	selected int
	height   int
	state    modelState
}

func newModel(lib d.Library, unit *ir.Unit) *model {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "routine name"
	ti.Width = 40
	ti.Focus()

	m := &model{
		lib:    lib,
		unit:   unit,
		filter: ti,
		source: viewport.New(80, 20),
		height: 24,
	}
	m.refilter()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.source.Width = msg.Width
		m.source.Height = max(msg.Height-chrome, 1)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == stateSource {
			return m.updateSource(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.state == stateSource {
		var cmd tea.Cmd
		m.source, cmd = m.source.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
		return m, nil
	case "enter":
		if r, ok := m.current(); ok {
			m.source.SetContent(m.render(r))
			m.source.GotoTop()
			m.state = stateSource
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *model) updateSource(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = stateBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.source, cmd = m.source.Update(msg)
	return m, cmd
}

// refilter recomputes the routines matching the filter text.
func (m *model) refilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, r := range m.lib.Routines {
		if strings.Contains(r.Name, q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *model) current() (d.Routine, bool) {
	if len(m.visible) == 0 {
		return d.Routine{}, false
	}
	return m.lib.Routines[m.visible[m.selected]], true
}

// render returns the C bridge of one routine.
func (m *model) render(r d.Routine) string {
	p, ok := m.unit.Program(r.Name)
	if !ok {
		return errorStyle.Render("no program for " + r.Name)
	}
	e := cjni.NewEmitter(m.unit)
	e.Program(p)
	return string(e.Bytes())
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("JNI Bridge"))
	b.WriteString(" ")
	b.WriteString(m.unit.Class)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString(m.filter.View())
		b.WriteString("\n")
		rows := max(m.height-chrome-1, 1)
		start := 0
		if m.selected >= rows {
			start = m.selected - rows + 1
		}
		for i := start; i < len(m.visible) && i < start+rows; i++ {
			b.WriteString(m.row(i))
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(errorStyle.Render("no matching routines"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d • ↑/↓ select • enter source • esc quit",
			len(m.visible), len(m.lib.Routines))))

	case stateSource:
		r, _ := m.current()
		b.WriteString(funcStyle.Render(signature(r)))
		b.WriteString("\n")
		b.WriteString(m.source.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • esc back", m.source.ScrollPercent()*100)))
	}
	return b.String()
}

func (m *model) row(i int) string {
	r := m.lib.Routines[m.visible[i]]
	line := signature(r)
	if r.Stub {
		line += " " + stubStyle.Render("(stub)")
	}
	if i == m.selected {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}
