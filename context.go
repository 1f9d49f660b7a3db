package sapling

// TextStyle describes how FillText renders a string.
type TextStyle struct {
	Color     Color
	Align     HAlign
	Font      Font // nil means the host's default font
	Underline bool
}

// DrawingContext is the drawing capability a host implements. The scene
// never touches pixels directly.
type DrawingContext interface {
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	// FillText draws text inside r, vertically centered, aligned per style.
	FillText(r Rect, text string, style TextStyle)
}

// Clipper is implemented by hosts that can restrict painting to a
// rectangle. DrawScene sets each view's clip before calling its Draw closure
// and passes an empty Rect once the pass is over, meaning no clip. Strokes
// and text reach the host whole, so a retained back buffer needs this to
// keep them inside the refilled region.
type Clipper interface {
	SetClip(r Rect)
}

// clipContext forwards to a host context, dropping or trimming anything
// outside clip. Draw closures receive one of these so that a view never
// paints outside the current frame's dirty region.
type clipContext struct {
	inner DrawingContext
	clip  Rect
	calls int
}

func (c *clipContext) FillRect(r Rect, col Color) {
	r = r.Intersect(c.clip)
	if r.IsEmpty() {
		return
	}
	c.calls++
	c.inner.FillRect(r, col)
}

func (c *clipContext) StrokeRect(r Rect, col Color) {
	// A stroke cut down to a sub-rectangle would draw false edges, so the
	// rectangle is forwarded whole and a Clipper host trims it.
	if !r.Intersects(c.clip) {
		return
	}
	c.calls++
	c.inner.StrokeRect(r, col)
}

func (c *clipContext) FillText(r Rect, text string, style TextStyle) {
	if text == "" || !r.Intersects(c.clip) {
		return
	}
	c.calls++
	c.inner.FillText(r, text, style)
}

// DrawCall is one recorded DrawingContext invocation.
type DrawCall struct {
	Op    string // "fill", "stroke" or "text"
	Rect  Rect
	Color Color
	Text  string
	Style TextStyle
}

// RecordingContext is a DrawingContext that stores every call. It backs the
// headless script runner and is handy in tests.
type RecordingContext struct {
	Calls []DrawCall
	Clips []Rect // every SetClip, in order
}

// SetClip records the clip.
func (r *RecordingContext) SetClip(rect Rect) {
	r.Clips = append(r.Clips, rect)
}

// FillRect records a fill.
func (r *RecordingContext) FillRect(rect Rect, c Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "fill", Rect: rect, Color: c})
}

// StrokeRect records a stroke.
func (r *RecordingContext) StrokeRect(rect Rect, c Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "stroke", Rect: rect, Color: c})
}

// FillText records a text draw.
func (r *RecordingContext) FillText(rect Rect, text string, style TextStyle) {
	r.Calls = append(r.Calls, DrawCall{Op: "text", Rect: rect, Color: style.Color, Text: text, Style: style})
}

// Texts returns the strings passed to FillText, in call order.
func (r *RecordingContext) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset discards all recorded calls and clips.
func (r *RecordingContext) Reset() {
	r.Calls = r.Calls[:0]
	r.Clips = r.Clips[:0]
}
