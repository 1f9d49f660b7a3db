package sapling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueOnePerKind(t *testing.T) {
	var q EventQueue
	q.Push(KeyEvent{Key: 'a'})
	q.Push(KeyEvent{Key: 'b'})
	q.Push(TapEvent{Point: Point{1, 1}})
	q.Push(TapEvent{Point: Point{9, 9}})
	q.Push(ScrollEvent{DY: 1})
	q.Push(ScrollEvent{DX: 2, DY: 1})
	q.Push(ActionEvent{})
	q.Push(ActionEvent{})
	assert.Equal(t, 4, q.Len())

	assert.Equal(t, []InputEvent{
		KeyEvent{Key: 'a'},
		TapEvent{Point: Point{9, 9}},
		ScrollEvent{DX: 2, DY: 2},
		ActionEvent{},
	}, q.Next())
	assert.Equal(t, []InputEvent{KeyEvent{Key: 'b'}}, q.Next())
	assert.Empty(t, q.Next())
	assert.Equal(t, 0, q.Len())
}

func TestSceneDriverRoutesEvents(t *testing.T) {
	s := newTestScene()
	var log []string
	v := NewView("a", Rect{0, 0, 10, 10})
	v.Input = recordingInput(&log, Generic{})
	s.AddView(v)
	s.SetFocused("a")

	var got []TargetedAction
	d := &SceneDriver{Scene: s, Theme: LightTheme(), Handler: func(_ *Scene, ta TargetedAction) {
		got = append(got, ta)
	}}
	d.Update(0.016, KeyEvent{Key: 'x'}, TapEvent{Point: Point{2, 2}})
	assert.Equal(t, []string{"a:Key('x')", "a:Tap(2,2)"}, log)
	assert.Len(t, got, 2)
}

func TestSceneDriverInjectedInputWins(t *testing.T) {
	s := newTestScene()
	var log []string
	v := NewView("a", Rect{0, 0, 10, 10})
	v.Input = recordingInput(&log, nil)
	s.AddView(v)
	s.SetFocused("a")
	s.InjectKey('i')

	d := &SceneDriver{Scene: s, Theme: LightTheme()}
	d.Update(0.016, KeyEvent{Key: 'r'})
	assert.Equal(t, []string{"a:Key('i')"}, log, "real input skipped while scripted input runs")

	d.Update(0.016, KeyEvent{Key: 'r'})
	assert.Equal(t, []string{"a:Key('i')", "a:Key('r')"}, log)
}

func TestSceneDriverDraw(t *testing.T) {
	s := newTestScene()
	var n int
	s.AddView(countingView("a", Rect{0, 0, 10, 10}, &n))
	d := &SceneDriver{Scene: s, Theme: LightTheme()}

	rec := &RecordingContext{}
	require.True(t, d.Draw(rec))
	assert.False(t, d.Draw(rec))
	assert.Equal(t, 1, n)
}
