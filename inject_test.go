package sapling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectQueueOrder(t *testing.T) {
	s := newTestScene()
	s.InjectTap(1, 2)
	s.InjectText("ab")
	s.InjectScroll(0, -1)
	s.InjectAction()
	require.Equal(t, 5, s.PendingInjections())

	var got []string
	route := func(ev InputEvent) { got = append(got, ev.String()) }
	for s.UpdateFunc(route) {
	}
	assert.Equal(t, []string{"Tap(1,2)", "Key('a')", "Key('b')", "Scroll(0,-1)", "Action"}, got)
	assert.Equal(t, 0, s.PendingInjections())
}

func TestUpdateConsumesOneEventPerFrame(t *testing.T) {
	s := newTestScene()
	s.InjectKey('x')
	s.InjectKey('y')

	n := 0
	route := func(InputEvent) { n++ }
	assert.True(t, s.UpdateFunc(route))
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.PendingInjections())
	assert.True(t, s.UpdateFunc(route))
	assert.False(t, s.UpdateFunc(route), "empty queue leaves the frame to real input")
	assert.Equal(t, 2, n)
}

func TestUpdateRoutesThroughHandleEvent(t *testing.T) {
	s := newTestScene()
	v := NewView("field", Rect{0, 0, 50, 50})
	v.Input = func(ctx InputContext) Action {
		if _, ok := ctx.Event.(TapEvent); ok {
			return Command("tapped")
		}
		return nil
	}
	s.AddView(v)
	s.InjectTap(10, 10)

	var got []TargetedAction
	s.Update(func(_ *Scene, ta TargetedAction) { got = append(got, ta) })
	require.Len(t, got, 1)
	assert.Equal(t, TargetedAction{Target: "field", Action: Command("tapped")}, got[0])
}
