package sapling

// hitTest returns the topmost visible view containing p. Candidates are
// collected in painter order and the buffer is walked backward so the
// last-drawn view wins. Views without an Input closure still occlude.
func (s *Scene) hitTest(p Point) *View {
	s.hitBuf = s.hitBuf[:0]
	for _, name := range s.drawOrder {
		v := s.views[name]
		if v == nil || !v.Visible {
			continue
		}
		s.hitBuf = append(s.hitBuf, v)
	}
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		if s.hitBuf[i].Bounds.Contains(p) {
			return s.hitBuf[i]
		}
	}
	return nil
}

// ClickAt routes a tap at p to the topmost visible view, regardless of
// focus. A tap on empty background is dropped. A tap whose topmost view takes
// no input is swallowed there and never reaches the views beneath.
func ClickAt(s *Scene, p Point) (TargetedAction, bool) {
	v := s.hitTest(p)
	if v == nil {
		s.log.Debug().Int("x", p.X).Int("y", p.Y).Msg("tap: no view at point")
		return TargetedAction{}, false
	}
	if v.Input == nil {
		s.log.Debug().Str("view", v.Name).Int("x", p.X).Int("y", p.Y).Msg("tap: absorbed by inert view")
		return TargetedAction{}, false
	}
	return s.dispatch(v.Name, TapEvent{Point: p})
}

// EventAtFocused routes ev to the focused view. Tap events are hit-tested
// instead, so hosts may pass every event through this one entry point.
// Keyed events while unfocused are dropped with a warning.
func EventAtFocused(s *Scene, ev InputEvent) (TargetedAction, bool) {
	if tap, ok := ev.(TapEvent); ok {
		return ClickAt(s, tap.Point)
	}
	if !s.hasFocus {
		s.log.Warn().Stringer("event", ev).Msg("event: no focused view")
		return TargetedAction{}, false
	}
	return s.dispatch(s.focused, ev)
}

// TypeAtFocused sends a key to the focused view.
func TypeAtFocused(s *Scene, key byte) (TargetedAction, bool) {
	return EventAtFocused(s, KeyEvent{Key: key})
}

// ScrollAtFocused sends a scroll delta to the focused view.
func ScrollAtFocused(s *Scene, dx, dy int) (TargetedAction, bool) {
	return EventAtFocused(s, ScrollEvent{DX: dx, DY: dy})
}

// ActionAtFocused sends a hardware click to the focused view.
func ActionAtFocused(s *Scene) (TargetedAction, bool) {
	return EventAtFocused(s, ActionEvent{})
}

// HandleEvent routes ev and passes any bubbled action to handler. It
// reports whether an action was produced.
func (s *Scene) HandleEvent(ev InputEvent, handler ActionHandler) bool {
	ta, ok := EventAtFocused(s, ev)
	if !ok {
		return false
	}
	if handler != nil {
		handler(s, ta)
	}
	return true
}

// dispatch invokes name's Input closure and marks it dirty afterwards. The
// closure may remove its own view, in which case nothing is marked.
func (s *Scene) dispatch(name string, ev InputEvent) (TargetedAction, bool) {
	v := s.views[name]
	if v == nil {
		s.log.Warn().Str("view", name).Stringer("event", ev).Msg("event: target vanished")
		return TargetedAction{}, false
	}
	if v.Input == nil {
		return TargetedAction{}, false
	}
	act := v.Input(InputContext{Scene: s, Target: name, Event: ev})
	if after := s.views[name]; after != nil {
		s.MarkDirty(after.Bounds)
	}
	if act == nil {
		return TargetedAction{}, false
	}
	return TargetedAction{Target: name, Action: act}, true
}
