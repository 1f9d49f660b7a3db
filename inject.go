package sapling

// InjectEvent queues a synthetic input event. Queued events are consumed one
// per frame by Update, through the same routing as real input.
func (s *Scene) InjectEvent(ev InputEvent) {
	s.injectQueue = append(s.injectQueue, ev)
}

// InjectTap queues a tap (pointer release) at the given screen coordinates.
func (s *Scene) InjectTap(x, y int) {
	s.InjectEvent(TapEvent{Point: Point{X: x, Y: y}})
}

// InjectKey queues a single key press.
func (s *Scene) InjectKey(key byte) {
	s.InjectEvent(KeyEvent{Key: key})
}

// InjectText queues one key event per byte of text. Consumes len(text)
// frames.
func (s *Scene) InjectText(text string) {
	for i := 0; i < len(text); i++ {
		s.InjectKey(text[i])
	}
}

// InjectScroll queues a scroll delta.
func (s *Scene) InjectScroll(dx, dy int) {
	s.InjectEvent(ScrollEvent{DX: dx, DY: dy})
}

// InjectAction queues a hardware click.
func (s *Scene) InjectAction() {
	s.InjectEvent(ActionEvent{})
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and passes it to
// route. The bool reports whether an event was consumed; real input should be
// skipped for that frame.
func (s *Scene) processInjectedInput(route func(InputEvent)) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	route(ev)
	return true
}

// Update advances the attached test runner and routes at most one injected
// event. It reports whether an injected event was consumed, in which case
// the host should ignore real input this frame.
func (s *Scene) Update(handler ActionHandler) bool {
	return s.UpdateFunc(func(ev InputEvent) { s.HandleEvent(ev, handler) })
}

// UpdateFunc is Update for applications with their own event routing, such
// as global key bindings that must see scripted input too.
func (s *Scene) UpdateFunc(route func(InputEvent)) bool {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	return s.processInjectedInput(route)
}
