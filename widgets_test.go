package sapling

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Menu ---

func TestMenuStateMoveWraps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"next", 0, 1, 1},
		{"wrap past end", 2, 1, 0},
		{"wrap before start", 0, -1, 2},
		{"large jump", 1, 7, 2},
		{"large negative", 1, -5, 2},
		{"no-op", 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &MenuState{Items: []string{"a", "b", "c"}, Selected: tt.start}
			st.Move(tt.delta)
			assert.Equal(t, tt.want, st.Selected)
		})
	}
}

func TestNewMenuPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { NewMenu("m", nil) })
}

func TestNewMenuCopiesItems(t *testing.T) {
	items := []string{"a", "b"}
	v := NewMenu("m", items)
	items[0] = "changed"
	assert.Equal(t, "a", ViewState[MenuState](v).Items[0])
	assert.Equal(t, Rect{0, 0, MenuMinWidth, 2 * MenuRowHeight}, v.Bounds)
}

func TestMenuKeys(t *testing.T) {
	s := newTestScene()
	s.AddView(NewMenu("m", []string{"one", "two", "three"}))
	s.SetFocused("m")
	st := GetViewState[MenuState](s, "m")

	tests := []struct {
		name string
		ev   InputEvent
		want int
	}{
		{"j moves down", KeyEvent{Key: 'j'}, 1},
		{"down arrow", KeyEvent{Key: KeyDown}, 2},
		{"down wraps", KeyEvent{Key: 'j'}, 0},
		{"k wraps up", KeyEvent{Key: 'k'}, 2},
		{"up arrow", KeyEvent{Key: KeyUp}, 1},
		{"scroll down", ScrollEvent{DY: 3}, 2},
		{"scroll up", ScrollEvent{DY: -1}, 1},
		{"horizontal scroll ignored", ScrollEvent{DX: 1}, 1},
		{"other key ignored", KeyEvent{Key: 'x'}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := EventAtFocused(s, tt.ev)
			assert.False(t, ok)
			assert.Equal(t, tt.want, st.Selected)
		})
	}

	ta, ok := TypeAtFocused(s, KeyEnter)
	require.True(t, ok)
	assert.Equal(t, Command("two"), ta.Action)

	ta, ok = ActionAtFocused(s)
	require.True(t, ok)
	assert.Equal(t, Command("two"), ta.Action)
}

func TestMenuTapSelectsRow(t *testing.T) {
	s := newTestScene()
	s.AddView(NewMenu("m", []string{"one", "two", "three"}).PositionAt(10, 5))

	ta, ok := ClickAt(s, Point{20, 5 + 2*MenuRowHeight + 3})
	require.True(t, ok)
	assert.Equal(t, TargetedAction{Target: "m", Action: Command("three")}, ta)
	assert.True(t, s.IsFocused("m"), "tap focuses the menu")
	assert.Equal(t, 2, GetViewState[MenuState](s, "m").Selected)
}

func TestMenuScrollByMarksDirty(t *testing.T) {
	s := newTestScene()
	s.AddView(NewMenu("m", []string{"a", "b"}).PositionAt(30, 40))
	s.dirty = Rect{}

	MenuScrollBy(s, "m", 1)
	assert.Equal(t, 1, GetViewState[MenuState](s, "m").Selected)
	assert.Equal(t, Rect{30, 40, MenuMinWidth, 2 * MenuRowHeight}, s.DirtyRect())
}

func TestMenuScrollByMissing(t *testing.T) {
	s := newTestScene()
	buf := captureLog(s)
	s.AddView(NewView("plain", Rect{}))
	MenuScrollBy(s, "plain", 1)
	MenuScrollBy(s, "nope", 1)
	assert.Contains(t, buf.String(), "menu scroll: no menu found")
}

func TestMenuLayoutWidth(t *testing.T) {
	s := newTestScene()
	long := "an item that is wider than the minimum"
	s.AddView(NewMenu("short", []string{"a", "b"}))
	s.AddView(NewMenu("long", []string{"x", long}))
	LayoutScene(s, LightTheme())

	assert.Equal(t, MenuMinWidth, s.GetView("short").Bounds.W)
	w, _ := MediumFont.MeasureString(long)
	assert.Equal(t, w+2*menuTextInset, s.GetView("long").Bounds.W)
	assert.Equal(t, 2*MenuRowHeight, s.GetView("long").Bounds.H)
}

func TestMenuDrawHighlightsSelection(t *testing.T) {
	s := newTestScene()
	s.AddView(NewMenu("m", []string{"one", "two"}))
	MenuScrollBy(s, "m", 1)
	s.MarkDirtyAll()

	theme := LightTheme()
	rec := &RecordingContext{}
	DrawScene(s, rec, theme)
	assert.Equal(t, []string{"one", "two"}, rec.Texts())

	var highlight []Rect
	for _, c := range rec.Calls {
		if c.Op == "fill" && c.Color == theme.Selected.Fill {
			highlight = append(highlight, c.Rect)
		}
	}
	require.Len(t, highlight, 1)
	assert.Equal(t, MenuRowHeight, highlight[0].Y)
}

// --- Button ---

func TestButton(t *testing.T) {
	b := NewButton("ok", "OK")
	w, h := MediumFont.MeasureString("OK")
	assert.Equal(t, Rect{0, 0, w + ButtonPadding, h + ButtonPadding}, b.Bounds)

	s := newTestScene()
	s.AddView(b)
	s.SetFocused("ok")

	tests := []struct {
		name string
		ev   InputEvent
		ok   bool
	}{
		{"tap", TapEvent{Point: Point{1, 1}}, true},
		{"hardware click", ActionEvent{}, true},
		{"enter", KeyEvent{Key: KeyEnter}, true},
		{"other key", KeyEvent{Key: 'a'}, false},
		{"scroll", ScrollEvent{DY: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta, ok := EventAtFocused(s, tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, Generic{}, ta.Action)
			}
		})
	}
}

func TestButtonDrawsFocusRing(t *testing.T) {
	s := newTestScene()
	s.AddView(NewButton("ok", "OK"))
	theme := LightTheme()

	rec := &RecordingContext{}
	s.SetFocused("ok")
	DrawScene(s, rec, theme)

	var strokes []Color
	for _, c := range rec.Calls {
		if c.Op == "stroke" {
			strokes = append(strokes, c.Color)
		}
	}
	assert.Equal(t, []Color{theme.Accent.Border}, strokes)
}

// --- Toggle button ---

func TestToggleButton(t *testing.T) {
	s := newTestScene()
	s.AddView(NewToggleButton("t", "Wifi"))
	assert.Equal(t, Rect{0, 0, 80, 30}, s.GetView("t").Bounds)
	st := GetViewState[ToggleState](s, "t")
	require.NotNil(t, st)

	_, ok := ClickAt(s, Point{5, 5})
	assert.False(t, ok, "toggles never bubble")
	assert.True(t, st.Selected)

	s.SetFocused("t")
	ActionAtFocused(s)
	assert.False(t, st.Selected)

	TypeAtFocused(s, KeyEnter)
	assert.False(t, st.Selected, "keys do not toggle")
}

// --- Toggle group ---

func TestToggleGroupTap(t *testing.T) {
	s := newTestScene()
	s.AddView(NewToggleGroup("g", []string{"small", "medium", "large"}, 0).PositionAt(20, 10))
	assert.Equal(t, Rect{20, 10, 3 * ToggleGroupCellWidth, 30}, s.GetView("g").Bounds)

	tests := []struct {
		name string
		x    int
		want string
	}{
		{"first cell", 21, "small"},
		{"second cell", 20 + ToggleGroupCellWidth + 5, "medium"},
		{"last pixel", 20 + 3*ToggleGroupCellWidth - 1, "large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta, ok := ClickAt(s, Point{tt.x, 15})
			require.True(t, ok)
			assert.Equal(t, Command(tt.want), ta.Action)
			assert.Equal(t, tt.want, GetViewState[ToggleGroupState](s, "g").SelectedItem())
		})
	}
}

func TestToggleGroupIgnoresKeys(t *testing.T) {
	s := newTestScene()
	s.AddView(NewToggleGroup("g", []string{"a", "b"}, 1))
	s.SetFocused("g")
	_, ok := TypeAtFocused(s, KeyEnter)
	assert.False(t, ok)
	assert.Equal(t, 1, GetViewState[ToggleGroupState](s, "g").Selected)
}

func TestNewToggleGroup(t *testing.T) {
	assert.Panics(t, func() { NewToggleGroup("g", nil, 0) })
	assert.Equal(t, 1, ViewState[ToggleGroupState](NewToggleGroup("g", []string{"a", "b"}, 9)).Selected)
	assert.Equal(t, 0, ViewState[ToggleGroupState](NewToggleGroup("g", []string{"a", "b"}, -3)).Selected)
}

// --- Text input ---

func TestTextInputEditing(t *testing.T) {
	s := newTestScene()
	buf := captureLog(s)
	s.AddView(NewTextInput("url", "", 200).PositionAt(0, 100))
	v := s.GetView("url")

	_, ok := ClickAt(s, Point{10, 110})
	assert.False(t, ok)
	require.True(t, s.IsFocused("url"), "tap focuses the field")

	for _, k := range []byte("abc") {
		TypeAtFocused(s, k)
	}
	assert.Equal(t, "abc", v.Title)

	TypeAtFocused(s, KeyBackspace)
	TypeAtFocused(s, KeyUp)
	assert.Equal(t, "ab", v.Title)
	assert.Contains(t, buf.String(), "unprintable key")

	TypeAtFocused(s, KeyDelete)
	ta, ok := TypeAtFocused(s, KeyEnter)
	require.True(t, ok)
	assert.Equal(t, Command("a"), ta.Action)
}

func TestTextInputBackspaceOnEmpty(t *testing.T) {
	s := newTestScene()
	s.AddView(NewTextInput("in", "", 100))
	s.SetFocused("in")
	TypeAtFocused(s, KeyBackspace)
	assert.Equal(t, "", s.GetView("in").Title)
}

func TestTextInputBackspaceMultiByte(t *testing.T) {
	s := newTestScene()
	s.AddView(NewTextInput("in", "http://例え.jp/é", 200))
	s.SetFocused("in")
	v := s.GetView("in")

	TypeAtFocused(s, KeyBackspace)
	assert.Equal(t, "http://例え.jp/", v.Title)
	for i := 0; i < 4; i++ {
		TypeAtFocused(s, KeyBackspace)
	}
	assert.Equal(t, "http://例え", v.Title)
	TypeAtFocused(s, KeyBackspace)
	assert.Equal(t, "http://例", v.Title)
	assert.True(t, utf8.ValidString(v.Title))
}

func TestTextInputCaretWhenFocused(t *testing.T) {
	s := newTestScene()
	s.AddView(NewTextInput("in", "hi", 100))

	rec := &RecordingContext{}
	s.MarkDirtyAll()
	DrawScene(s, rec, LightTheme())
	assert.Equal(t, []string{"hi"}, rec.Texts())

	rec.Reset()
	s.SetFocused("in")
	DrawScene(s, rec, LightTheme())
	assert.Equal(t, []string{"hi_"}, rec.Texts())
}

// --- Labels ---

func TestLabelFitsText(t *testing.T) {
	s := newTestScene()
	s.AddView(NewLabel("l", "hello").PositionAt(7, 9))
	w, h := MediumFont.MeasureString("hello")
	assert.Equal(t, Rect{7, 9, w, h}, s.GetView("l").Bounds)

	SetTitle(s, "l", "hello world")
	require.True(t, s.LayoutDirty())
	LayoutScene(s, LightTheme())
	w, _ = MediumFont.MeasureString("hello world")
	assert.Equal(t, Rect{7, 9, w, h}, s.GetView("l").Bounds, "origin kept")
}

func TestLabelLayoutUsesThemeFont(t *testing.T) {
	s := newTestScene()
	s.AddView(NewLabel("l", "abc"))
	LayoutScene(s, LightTheme().WithFonts(LargeFont, LargeFont))
	w, _ := LargeFont.MeasureString("abc")
	assert.Equal(t, w, s.GetView("l").Bounds.W)
}

func TestSetTitleMissingView(t *testing.T) {
	s := newTestScene()
	buf := captureLog(s)
	SetTitle(s, "ghost", "x")
	assert.Contains(t, buf.String(), "set title: no view found")
	assert.False(t, s.LayoutDirty())
}

func TestOverlayLabel(t *testing.T) {
	s := newTestScene()
	s.AddView(NewOverlayLabel("status", "Loading").PositionAt(200, 0))
	theme := LightTheme()

	rec := &RecordingContext{}
	s.MarkDirtyAll()
	DrawScene(s, rec, theme)
	require.Len(t, rec.Calls, 2)
	assert.Equal(t, DrawCall{Op: "fill", Rect: Rect{200, 0, 100, 20}, Color: theme.Standard.Text}, rec.Calls[0])
	assert.Equal(t, []string{"Loading"}, rec.Texts())
	assert.Nil(t, s.GetView("status").Input)
}

// --- Panel ---

func TestPanelDraw(t *testing.T) {
	s := newTestScene()
	s.AddView(NewPanel("p", Rect{0, 0, 50, 50}))
	theme := LightTheme()

	rec := &RecordingContext{}
	s.MarkDirtyAll()
	DrawScene(s, rec, theme)
	require.Len(t, rec.Calls, 2)
	assert.Equal(t, "fill", rec.Calls[0].Op)
	assert.Equal(t, theme.Panel.Fill, rec.Calls[0].Color)
	assert.Equal(t, "stroke", rec.Calls[1].Op)
}
