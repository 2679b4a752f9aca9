package cli

import (
	"context"
	"fmt"

	"github.com/adelarue/backline/internal/cli/formatter"
	"github.com/adelarue/backline/internal/contract"
	"github.com/adelarue/backline/internal/timeline"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const bufferStep = 0.5

type studioKeyMap struct {
	Quit        key.Binding
	BufferUp    key.Binding
	BufferDown  key.Binding
	Granularity key.Binding
	Reload      key.Binding
}

func newStudioKeyMap() studioKeyMap {
	return studioKeyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		BufferUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "buffer up")),
		BufferDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "buffer down")),
		Granularity: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "granularity")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

// studioLoadedMsg carries a fresh engine pass into the model.
type studioLoadedMsg struct {
	resp *contract.StudioResponse
	err  error
}

// studioModel is the full-screen studio: the rendered timeline in a
// scrollable viewport, with live buffer and granularity controls.
type studioModel struct {
	app  *App
	req  contract.StudioRequest
	keys studioKeyMap
	vp   viewport.Model

	width  int
	height int
	ready  bool

	resp *contract.StudioResponse
	err  error
}

func newStudioModel(app *App, req contract.StudioRequest) studioModel {
	return studioModel{
		app:  app,
		req:  req,
		keys: newStudioKeyMap(),
		vp:   viewport.New(0, 0),
	}
}

func (m studioModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m studioModel) loadCmd() tea.Cmd {
	app, req := m.app, m.req
	return func() tea.Msg {
		resp, err := app.Studio.BuildStudio(context.Background(), req)
		return studioLoadedMsg{resp: resp, err: err}
	}
}

func (m studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 2 // status + help lines
		m.ready = true
		m.refreshContent()
		return m, nil

	case studioLoadedMsg:
		m.resp = msg.resp
		m.err = msg.err
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.BufferUp):
			return m.adjustBuffer(bufferStep)
		case key.Matches(msg, m.keys.BufferDown):
			return m.adjustBuffer(-bufferStep)
		case key.Matches(msg, m.keys.Granularity):
			return m.cycleGranularity()
		case key.Matches(msg, m.keys.Reload):
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m studioModel) adjustBuffer(delta float64) (tea.Model, tea.Cmd) {
	current := 0.0
	if m.resp != nil {
		current = m.resp.BufferHours
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	if next > 24 {
		next = 24
	}
	m.req.BufferHours = &next
	return m, m.loadCmd()
}

// granularityCycle is the order the g key steps through.
var granularityCycle = []timeline.Granularity{
	timeline.GranularityDay,
	timeline.GranularityWeek,
	timeline.GranularityMonth,
	timeline.GranularityQuarter,
	timeline.GranularityYear,
}

func (m studioModel) cycleGranularity() (tea.Model, tea.Cmd) {
	current := timeline.GranularityWeek
	if m.resp != nil {
		current = m.resp.Result.Granularity
	}
	next := granularityCycle[0]
	for i, g := range granularityCycle {
		if g == current {
			next = granularityCycle[(i+1)%len(granularityCycle)]
			break
		}
	}
	m.req.Granularity = string(next)
	return m, m.loadCmd()
}

func (m *studioModel) refreshContent() {
	if !m.ready || m.resp == nil {
		return
	}
	width := m.width
	if width < formatter.MinStudioWidth {
		width = formatter.MinStudioWidth
	}
	m.vp.SetContent(formatter.FormatStudio(m.resp, width-2))
}

func (m studioModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + m.helpLine()
	}
	if !m.ready || m.resp == nil {
		return formatter.Dim("Loading studio…")
	}

	status := fmt.Sprintf(" buffer %s · %s view · %d conflicts",
		formatter.FormatHours(m.resp.BufferHours),
		m.resp.Result.Granularity,
		len(m.resp.Result.Conflicts))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.vp.View(),
		formatter.StyleHeader.Render(status),
		m.helpLine(),
	)
}

func (m studioModel) helpLine() string {
	return formatter.Dim(" +/- buffer · g granularity · r reload · ↑/↓ scroll · q quit")
}
