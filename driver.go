package sapling

// Driver is what a host's frame loop drives: one Update with the events
// polled this frame, then one Draw.
type Driver interface {
	Update(dt float32, events ...InputEvent)
	Draw(ctx DrawingContext) bool
}

// SceneDriver drives a bare scene with a fixed theme and one action handler.
type SceneDriver struct {
	Scene   *Scene
	Theme   *Theme
	Handler ActionHandler
}

// Update replays scripted input if any is pending, otherwise routes events.
func (d *SceneDriver) Update(_ float32, events ...InputEvent) {
	if d.Scene.Update(d.Handler) {
		return
	}
	for _, ev := range events {
		d.Scene.HandleEvent(ev, d.Handler)
	}
}

// Draw renders the scene.
func (d *SceneDriver) Draw(ctx DrawingContext) bool {
	return d.Scene.Render(ctx, d.Theme)
}

// EventQueue spreads polled input over frames so that at most one event of
// each kind is routed per frame. Keys queue in order, scroll deltas
// accumulate, and a newer tap replaces an older one.
type EventQueue struct {
	keys   []byte
	tap    *TapEvent
	scroll *ScrollEvent
	action bool
}

// Push adds a polled event.
func (q *EventQueue) Push(ev InputEvent) {
	switch ev := ev.(type) {
	case KeyEvent:
		q.keys = append(q.keys, ev.Key)
	case TapEvent:
		q.tap = &ev
	case ScrollEvent:
		if q.scroll != nil {
			ev.DX += q.scroll.DX
			ev.DY += q.scroll.DY
		}
		q.scroll = &ev
	case ActionEvent:
		q.action = true
	}
}

// Next returns this frame's events: at most one of each kind.
func (q *EventQueue) Next() []InputEvent {
	var out []InputEvent
	if len(q.keys) > 0 {
		out = append(out, KeyEvent{Key: q.keys[0]})
		q.keys = q.keys[1:]
	}
	if q.tap != nil {
		out = append(out, *q.tap)
		q.tap = nil
	}
	if q.scroll != nil {
		out = append(out, *q.scroll)
		q.scroll = nil
	}
	if q.action {
		out = append(out, ActionEvent{})
		q.action = false
	}
	return out
}

// Len returns the number of events still queued.
func (q *EventQueue) Len() int {
	n := len(q.keys)
	if q.tap != nil {
		n++
	}
	if q.scroll != nil {
		n++
	}
	if q.action {
		n++
	}
	return n
}
