// Package termhost runs a sapling scene in a terminal. Pixel geometry is
// mapped onto a grid of character cells; fills paint cell backgrounds,
// strokes become box-drawing borders and text lands on the cell row under
// the vertical center of its rectangle.
package termhost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/sapling"
)

// Cell size in scene pixels. Matches the 8x16 medium font, so text measured
// by the scene fits the cells it is drawn into.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Cell is one character position.
type Cell struct {
	Rune      rune // 0 marks the trailing half of a wide rune
	FG, BG    sapling.Color
	Underline bool
}

// Canvas implements sapling.DrawingContext on a grid of cells.
type Canvas struct {
	cols, rows int
	cells      []Cell

	clipped                bool
	clipC0, clipR0, clipC1 int
	clipR1                 int
}

// NewCanvas creates a canvas covering a w x h pixel screen.
func NewCanvas(w, h int) *Canvas {
	cols := (w + CellWidth - 1) / CellWidth
	rows := (h + CellHeight - 1) / CellHeight
	c := &Canvas{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', FG: sapling.ColorBlack, BG: sapling.ColorWhite}
	}
	return c
}

// Size returns the grid dimensions in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Cell returns the cell at (col, row), or an empty cell out of bounds.
func (c *Canvas) Cell(col, row int) Cell {
	if !c.inBounds(col, row) {
		return Cell{Rune: ' '}
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) inBounds(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

func (c *Canvas) set(col, row int, cell Cell) {
	if !c.inBounds(col, row) {
		return
	}
	if c.clipped && (col < c.clipC0 || col >= c.clipC1 || row < c.clipR0 || row >= c.clipR1) {
		return
	}
	c.cells[row*c.cols+col] = cell
}

// SetClip limits writes to the cells covered by r. An empty r lifts the
// clip.
func (c *Canvas) SetClip(r sapling.Rect) {
	c.clipped = !r.IsEmpty()
	if c.clipped {
		c.clipC0, c.clipR0, c.clipC1, c.clipR1 = cellRect(r)
	}
}

// span returns the half-open cell range whose centers fall inside [p, p+n).
func span(p, n, size int) (int, int) {
	return (p + size/2) / size, (p + n + size/2) / size
}

// cellRect returns the cells covered by r.
func cellRect(r sapling.Rect) (c0, r0, c1, r1 int) {
	c0, c1 = span(r.X, r.W, CellWidth)
	r0, r1 = span(r.Y, r.H, CellHeight)
	return
}

// FillRect paints the background of every covered cell and clears its rune.
func (c *Canvas) FillRect(r sapling.Rect, col sapling.Color) {
	if r.IsEmpty() {
		return
	}
	c0, r0, c1, r1 := cellRect(r)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			c.set(x, y, Cell{Rune: ' ', FG: col, BG: col})
		}
	}
}

// StrokeRect draws a box-drawing border along the covered cells.
func (c *Canvas) StrokeRect(r sapling.Rect, col sapling.Color) {
	if r.IsEmpty() {
		return
	}
	c0, r0, c1, r1 := cellRect(r)
	if c1-c0 < 2 || r1-r0 < 2 {
		return
	}
	put := func(x, y int, ch rune) {
		cell := c.Cell(x, y)
		cell.Rune, cell.FG, cell.Underline = ch, col, false
		c.set(x, y, cell)
	}
	for x := c0 + 1; x < c1-1; x++ {
		put(x, r0, '─')
		put(x, r1-1, '─')
	}
	for y := r0 + 1; y < r1-1; y++ {
		put(c0, y, '│')
		put(c1-1, y, '│')
	}
	put(c0, r0, '┌')
	put(c1-1, r0, '┐')
	put(c0, r1-1, '└')
	put(c1-1, r1-1, '┘')
}

// FillText writes s on the row under the vertical center of r, keeping each
// cell's background.
func (c *Canvas) FillText(r sapling.Rect, s string, style sapling.TextStyle) {
	if s == "" || r.IsEmpty() {
		return
	}
	c0, _, c1, _ := cellRect(r)
	avail := c1 - c0
	if avail <= 0 {
		return
	}
	row := (r.Y + r.H/2) / CellHeight
	s = runewidth.Truncate(s, avail, "")
	w := runewidth.StringWidth(s)

	x := c0
	switch style.Align {
	case sapling.AlignCenter:
		x += (avail - w) / 2
	case sapling.AlignRight:
		x = c1 - w
	}
	for _, ch := range s {
		rw := runewidth.RuneWidth(ch)
		cell := c.Cell(x, row)
		cell.Rune, cell.FG, cell.Underline = ch, style.Color, style.Underline
		c.set(x, row, cell)
		for i := 1; i < rw; i++ {
			cont := c.Cell(x+i, row)
			cont.Rune = 0
			c.set(x+i, row, cont)
		}
		x += rw
	}
}

// Line returns row as plain text.
func (c *Canvas) Line(row int) string {
	var b strings.Builder
	for x := 0; x < c.cols; x++ {
		if ch := c.Cell(x, row).Rune; ch != 0 {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// String returns the whole grid as plain text, one line per row.
func (c *Canvas) String() string {
	lines := make([]string, c.rows)
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Render returns the grid styled with lipgloss. Runs of cells sharing a
// style are rendered together.
func (c *Canvas) Render() string {
	lines := make([]string, c.rows)
	var run strings.Builder
	for y := 0; y < c.rows; y++ {
		var line strings.Builder
		start := c.Cell(0, y)
		run.Reset()
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(cellStyle(start).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.cols; x++ {
			cell := c.Cell(x, y)
			if cell.Rune == 0 {
				continue
			}
			if !sameStyle(cell, start) {
				flush()
				start = cell
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b Cell) bool {
	return a.FG == b.FG && a.BG == b.BG && a.Underline == b.Underline
}

func cellStyle(c Cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.FG.Hex())).
		Background(lipgloss.Color(c.BG.Hex())).
		Underline(c.Underline)
}
