package termhost

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/sapling"
)

// fakeDriver records the events of every frame.
type fakeDriver struct {
	frames [][]sapling.InputEvent
	dts    []float32
	draw   bool
}

func (d *fakeDriver) Update(dt float32, events ...sapling.InputEvent) {
	d.frames = append(d.frames, events)
	d.dts = append(d.dts, dt)
}

func (d *fakeDriver) Draw(ctx sapling.DrawingContext) bool {
	if d.draw {
		ctx.FillText(sapling.NewRect(0, 0, 80, 16), "frame", sapling.TextStyle{})
	}
	return d.draw
}

func newTestModel(d sapling.Driver) *Model {
	return NewModel(sapling.NewScene(sapling.NewRect(0, 0, 80, 32)), d, 0)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeDriver{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelInit(t *testing.T) {
	m := newTestModel(&fakeDriver{})
	assert.NotNil(t, m.Init())
	assert.Equal(t, 33*time.Millisecond, m.frame)
}

func TestModelSpreadsKeysOverFrames(t *testing.T) {
	d := &fakeDriver{}
	m := newTestModel(d)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	start := time.Unix(100, 0)
	_, cmd := m.Update(tickMsg(start))
	assert.NotNil(t, cmd, "ticks reschedule")
	m.Update(tickMsg(start.Add(50 * time.Millisecond)))
	m.Update(tickMsg(start.Add(100 * time.Millisecond)))

	require.Len(t, d.frames, 3)
	assert.Equal(t, []sapling.InputEvent{
		sapling.KeyEvent{Key: 'a'},
		sapling.TapEvent{Point: sapling.Point{X: 12, Y: 8}},
	}, d.frames[0])
	assert.Equal(t, []sapling.InputEvent{sapling.KeyEvent{Key: 'b'}}, d.frames[1])
	assert.Empty(t, d.frames[2])

	assert.InDelta(t, 0.033, d.dts[0], 1e-6, "first frame uses the nominal interval")
	assert.InDelta(t, 0.05, d.dts[1], 1e-6)
}

func TestModelViewRendersAfterDraw(t *testing.T) {
	d := &fakeDriver{draw: true}
	m := newTestModel(d)
	assert.Empty(t, m.View())

	m.Update(tickMsg(time.Now()))
	assert.Contains(t, m.View(), "frame")
	assert.Equal(t, "frame     ", m.Canvas().Line(0))
}

func TestModelRendersFirstFrameEvenWhenClean(t *testing.T) {
	m := newTestModel(&fakeDriver{})
	m.Update(tickMsg(time.Now()))
	assert.NotEmpty(t, m.View())
}
