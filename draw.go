package sapling

import "time"

// DrawScene repaints every visible view whose bounds touch the dirty
// rectangle, in draw order, and then clears the dirty rectangle (or re-dirties
// the full screen in auto-redraw mode). It returns false without calling ctx
// when nothing is dirty.
//
// Each Draw closure receives a context clipped to the intersection of its
// bounds with the dirty region. A host that implements Clipper receives the
// same clip. A view whose bounds miss the dirty region is not called at all.
func DrawScene(s *Scene, ctx DrawingContext, theme *Theme) bool {
	if s.dirty.IsEmpty() {
		return false
	}
	start := time.Now()

	region := s.dirty
	if !s.screen.IsEmpty() {
		region = region.Intersect(s.screen)
	}

	drawn, skipped, calls := 0, 0, 0
	if !region.IsEmpty() {
		cc := &clipContext{inner: ctx}
		clipper, _ := ctx.(Clipper)
		for _, name := range s.drawOrder {
			v := s.views[name]
			if v == nil || !v.Visible || v.Draw == nil {
				continue
			}
			clip := v.Bounds.Intersect(region)
			if clip.IsEmpty() {
				skipped++
				continue
			}
			cc.clip = clip
			if clipper != nil {
				clipper.SetClip(clip)
			}
			v.Draw(v, cc, theme)
			drawn++
		}
		if clipper != nil {
			clipper.SetClip(Rect{})
		}
		calls = cc.calls
	}

	if s.autoRedraw {
		s.dirty = s.screen
	} else {
		s.dirty = Rect{}
	}

	s.stats.DrawTime = time.Since(start)
	s.stats.Painted = region
	s.stats.ViewsDrawn = drawn
	s.stats.ViewsSkipped = skipped
	s.stats.DrawCalls = calls
	return true
}

// Render runs the layout pass (if due) followed by the draw pass, and logs
// frame stats in debug mode. Hosts that need the flush region should read
// DirtyRect before calling Render, or Stats().Painted after it.
func (s *Scene) Render(ctx DrawingContext, theme *Theme) bool {
	s.stats = FrameStats{}
	LayoutScene(s, theme)
	painted := DrawScene(s, ctx, theme)
	if painted {
		s.debugLog()
	}
	return painted
}
