package sapling

import "time"

// FrameStats holds per-frame timing and draw metrics for the last Render.
type FrameStats struct {
	LayoutTime   time.Duration
	DrawTime     time.Duration
	Painted      Rect // region passed to draw closures, empty if nothing was drawn
	ViewsDrawn   int
	ViewsSkipped int // visible views whose bounds missed the dirty region
	DrawCalls    int
}

// Stats returns the metrics of the last frame.
func (s *Scene) Stats() FrameStats {
	return s.stats
}

// debugLog writes the frame stats at debug level.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	st := s.stats
	s.log.Debug().
		Dur("layout", st.LayoutTime).
		Dur("draw", st.DrawTime).
		Stringer("painted", st.Painted).
		Int("drawn", st.ViewsDrawn).
		Int("skipped", st.ViewsSkipped).
		Int("calls", st.DrawCalls).
		Msg("frame")
}

// debugCheckEdges warns about parent/child edges naming views that no longer
// exist. RootName is exempt.
func (s *Scene) debugCheckEdges() {
	for parent, kids := range s.children {
		if parent != RootName && !s.HasView(parent) {
			s.log.Warn().Str("view", parent).Int("children", len(kids)).Msg("debug: edge from missing parent")
		}
		for _, kid := range kids {
			if !s.HasView(kid) {
				s.log.Warn().Str("parent", parent).Str("view", kid).Msg("debug: edge to missing child")
			}
		}
	}
}

// debugMaxViews is the view count above which debug mode warns.
const debugMaxViews = 512

func (s *Scene) debugCheckViewCount() {
	if len(s.views) > debugMaxViews {
		s.log.Warn().Int("views", len(s.views)).Int("threshold", debugMaxViews).Msg("debug: large scene")
	}
}
