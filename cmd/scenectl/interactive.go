package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scenelink/scenelink/event"
	"github.com/scenelink/scenelink/registry"
	"github.com/scenelink/scenelink/scene"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	capStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const eventLogDepth = 12

type tuiState int

const (
	stateObjects tuiState = iota
	stateSizeInput
)

type objectRow struct {
	id   registry.Handle
	caps registry.Capability
}

type tuiModel struct {
	mgr  *scene.Manager
	win  *demoWindow
	ren  *demoRenderer
	rows []objectRow

	observed map[registry.Handle]event.Token
	log      []string
	status   string

	sizeInput textinput.Model
	state     tuiState
	selected  int
}

func newTuiModel(width, height int) *tuiModel {
	mgr := scene.NewManager()
	win, ren, _ := newDemoScene(width, height)
	mgr.Register(win)
	mgr.Register(ren)

	m := &tuiModel{
		mgr:      mgr,
		win:      win,
		ren:      ren,
		observed: make(map[registry.Handle]event.Token),
		state:    stateObjects,
	}
	m.refreshRows()
	return m
}

func (m *tuiModel) refreshRows() {
	m.rows = m.rows[:0]
	m.mgr.Objects().Each(func(h registry.Handle, caps registry.Capability, _ any) bool {
		m.rows = append(m.rows, objectRow{id: h, caps: caps})
		return true
	})
	sort.Slice(m.rows, func(i, j int) bool { return m.rows[i].id < m.rows[j].id })
	if m.selected >= len(m.rows) {
		m.selected = 0
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateSizeInput {
		switch key.String() {
		case "enter":
			m.applySize(m.sizeInput.Value())
			m.state = stateObjects
		case "esc":
			m.state = stateObjects
		case "ctrl+c":
			m.mgr.Close()
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.sizeInput, cmd = m.sizeInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		m.mgr.Close()
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}

	case "r":
		m.report("render", m.mgr.Render(m.current()))

	case "c":
		m.report("reset camera", m.mgr.ResetCamera(m.current()))

	case "s":
		ti := textinput.New()
		ti.Placeholder = "WIDTHxHEIGHT"
		ti.Prompt = "size: "
		ti.Width = 20
		ti.Focus()
		m.sizeInput = ti
		m.state = stateSizeInput

	case "o":
		m.toggleObserver(m.current())

	case "x":
		id := m.current()
		m.report("unregister", m.mgr.Unregister(id))
		delete(m.observed, id)
		m.refreshRows()
	}

	return m, nil
}

func (m *tuiModel) current() registry.Handle {
	if len(m.rows) == 0 {
		return 0
	}
	return m.rows[m.selected].id
}

func (m *tuiModel) report(op string, ok bool) {
	if ok {
		m.status = eventStyle.Render(fmt.Sprintf("%s id=%d ok", op, m.current()))
	} else {
		m.status = errorStyle.Render(fmt.Sprintf("%s id=%d failed", op, m.current()))
	}
}

func (m *tuiModel) applySize(value string) {
	w, h, found := strings.Cut(value, "x")
	if !found {
		m.status = errorStyle.Render("size must look like 640x480")
		return
	}
	width, err1 := strconv.Atoi(strings.TrimSpace(w))
	height, err2 := strconv.Atoi(strings.TrimSpace(h))
	if err1 != nil || err2 != nil {
		m.status = errorStyle.Render("size must look like 640x480")
		return
	}
	m.report("resize", m.mgr.SetSize(m.current(), width, height))
}

func (m *tuiModel) toggleObserver(id registry.Handle) {
	if token, ok := m.observed[id]; ok {
		m.report("remove observer", m.mgr.RemoveObserver(id, token))
		delete(m.observed, id)
		return
	}

	token := m.mgr.AddObserver(id, string(event.RenderEvent), func(sender uint32, name string) {
		m.log = append(m.log, fmt.Sprintf("sender=%d %s", sender, name))
		if len(m.log) > eventLogDepth {
			m.log = m.log[len(m.log)-eventLogDepth:]
		}
	})
	if token == 0 {
		m.status = errorStyle.Render(fmt.Sprintf("add observer id=%d failed", id))
		return
	}
	m.observed[id] = token
	m.status = eventStyle.Render(fmt.Sprintf("observing RenderEvent on id=%d", id))
}

func (m *tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("scenectl"))
	b.WriteString(fmt.Sprintf("  window %dx%d, %d frame(s), %d camera reset(s)\n\n",
		m.win.width, m.win.height, m.win.frames, m.ren.resets))

	if len(m.rows) == 0 {
		b.WriteString("No objects registered.\n")
	}
	for i, row := range m.rows {
		line := fmt.Sprintf("%s  %s",
			handleStyle.Render(fmt.Sprintf("id=%d", row.id)),
			capStyle.Render(capString(row.caps)))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		if _, ok := m.observed[row.id]; ok {
			b.WriteString(eventStyle.Render("  [observing]"))
		}
		b.WriteString("\n")
	}

	if m.state == stateSizeInput {
		b.WriteString("\n")
		b.WriteString(m.sizeInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
		return b.String()
	}

	if len(m.log) > 0 {
		b.WriteString("\nEvents:\n")
		for _, line := range m.log {
			b.WriteString("  ")
			b.WriteString(eventStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • r render • c camera • s size • o observe • x unregister • q quit"))
	return b.String()
}

func capString(caps registry.Capability) string {
	var parts []string
	if caps.Has(registry.CapRenderable) {
		parts = append(parts, "render")
	}
	if caps.Has(registry.CapResizable) {
		parts = append(parts, "resize")
	}
	if caps.Has(registry.CapCameraOwner) {
		parts = append(parts, "camera")
	}
	if caps.Has(registry.CapObservable) {
		parts = append(parts, "observe")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

func runInteractive(width, height int) error {
	p := tea.NewProgram(newTuiModel(width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
