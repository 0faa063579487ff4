package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/armchain/internal/config"
	"github.com/san-kum/armchain/internal/input"
	"github.com/san-kum/armchain/internal/render"
	"github.com/san-kum/armchain/internal/sim"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	historyCapacity = 120
	panelWidth      = 40
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(panelWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the bubbletea model for the terminal backend.
type Model struct {
	driver   *sim.Driver
	space    render.Size
	canvas   *Canvas
	raster   *raster
	interval time.Duration
	radius   []float64
	lastTick time.Time
	fps      float64
}

func NewModel(cfg *config.Config) Model {
	m := Model{
		driver:   sim.New(cfg),
		space:    cfg.CanvasSize(),
		interval: time.Second / time.Duration(cfg.Window.FPS),
		radius:   make([]float64, 0, historyCapacity),
	}
	m.resize(defaultCols-panelWidth-4, defaultRows)
	return m
}

func (m *Model) resize(cols, rows int) {
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	m.canvas = NewCanvas(cols, rows)
	m.raster = newRaster(m.canvas, m.space)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if ev, ok := translateKey(msg); ok && m.driver.Handle(ev) == input.ActionQuit {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel() {
			ev := input.MouseClick{Button: int(msg.Button), X: float64(msg.X), Y: float64(msg.Y)}
			if m.driver.Handle(ev) == input.ActionQuit {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width-panelWidth-4, msg.Height-2)
	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
				m.fps = 1 / dt
			}
		}
		m.lastTick = now
		m.driver.Tick()
		m.record()
		return m, m.tick()
	}
	return m, nil
}

// record appends the outermost tip's distance from the origin.
func (m *Model) record() {
	poses := m.driver.Poses(m.space)
	if len(poses) == 0 {
		return
	}
	r := poses[len(poses)-1].Tip.Sub(poses[0].Base).Len()
	m.radius = append(m.radius, r)
	if len(m.radius) > historyCapacity {
		m.radius = m.radius[1:]
	}
}

func (m Model) View() string {
	m.driver.Draw(m.raster, m.space, m.fps)
	canvasView := canvasStyle.Render(m.canvas.Render())

	var s strings.Builder
	s.WriteString(headerStyle.Render("ARMCHAIN") + "\n")
	status := "RUNNING"
	if m.driver.Clock.Paused {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s  t=%d\n", status, m.driver.Clock.T))

	if m.raster.hasRect && len(m.raster.lines) > 0 {
		panel := lipgloss.NewStyle().
			Background(hexColor(m.raster.panel)).
			Foreground(hexColor(m.raster.text)).
			Padding(0, 1)
		s.WriteString("\n" + panel.Render(strings.Join(m.raster.lines, "\n")) + "\n")
		if len(m.radius) > 1 {
			chart := asciigraph.Plot(m.radius, asciigraph.Height(4), asciigraph.Width(panelWidth-12), asciigraph.Caption("tip radius"))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("SPACE:Pause  F3:Debug\n←/→:Nudge  Q/ESC/Click:Quit"))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

var keyNames = map[string]input.Key{
	"f3":    input.KeyF3,
	" ":     input.KeySpace,
	"space": input.KeySpace,
	"esc":   input.KeyEscape,
	"q":     input.KeyQ,
	"left":  input.KeyLeft,
	"right": input.KeyRight,
}

// translateKey converts a bubbletea key such as "shift+left" into a key
// press. Keys outside the controller's set are reported as KeyOther.
func translateKey(msg tea.KeyMsg) (input.Event, bool) {
	name := msg.String()
	var mods input.Mod
	for {
		switch {
		case strings.HasPrefix(name, "alt+"):
			mods |= input.ModAlt
			name = name[4:]
			continue
		case strings.HasPrefix(name, "ctrl+"):
			mods |= input.ModCtrl
			name = name[5:]
			continue
		case strings.HasPrefix(name, "shift+"):
			mods |= input.ModShift
			name = name[6:]
			continue
		}
		break
	}
	if name == "" {
		return nil, false
	}
	key, ok := keyNames[name]
	if !ok {
		key = input.KeyOther
	}
	return input.KeyPress{Key: key, Mods: mods}, true
}

// Run starts the terminal UI and blocks until the user quits.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
