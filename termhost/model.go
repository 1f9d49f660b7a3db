package termhost

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/sapling"
)

// RunConfig configures Run.
type RunConfig struct {
	// Frame is the tick interval. Defaults to 33ms.
	Frame time.Duration
	// Options are passed to tea.NewProgram after the defaults (alt screen
	// and cell-motion mouse reporting).
	Options []tea.ProgramOption
}

type tickMsg time.Time

// Model is the bubbletea model hosting a scene.
type Model struct {
	scene  *sapling.Scene
	driver sapling.Driver
	canvas *Canvas
	keys   keyMap
	queue  sapling.EventQueue
	frame  time.Duration
	last   time.Time
	view   string
}

// NewModel creates a model drawing scene through d.
func NewModel(scene *sapling.Scene, d sapling.Driver, frame time.Duration) *Model {
	if frame <= 0 {
		frame = 33 * time.Millisecond
	}
	screen := scene.Screen()
	return &Model{
		scene:  scene,
		driver: d,
		canvas: NewCanvas(screen.W, screen.H),
		keys:   defaultKeyMap(),
		frame:  frame,
	}
}

// Canvas returns the cell grid the model draws into.
func (m *Model) Canvas() *Canvas {
	return m.canvas
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		for _, ev := range m.keys.translate(msg) {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := translateMouse(msg); ok {
			m.queue.Push(ev)
		}
		return m, nil

	case tickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

// step runs one frame: route this frame's events, then repaint if dirty.
func (m *Model) step(now time.Time) {
	dt := float32(m.frame.Seconds())
	if !m.last.IsZero() {
		dt = float32(now.Sub(m.last).Seconds())
	}
	m.last = now

	m.driver.Update(dt, m.queue.Next()...)
	if m.driver.Draw(m.canvas) || m.view == "" {
		m.view = m.canvas.Render()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.view
}

// Run hosts the scene until ctrl+c.
func Run(scene *sapling.Scene, d sapling.Driver, cfg RunConfig) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, cfg.Options...)
	_, err := tea.NewProgram(NewModel(scene, d, cfg.Frame), opts...).Run()
	return err
}
