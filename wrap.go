package sapling

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextRun is a styled piece of one display line. Link is the index of the
// source link span among the page's links, or -1.
type TextRun struct {
	Text  string
	Style RunStyle
	Href  string
	Link  int
}

// TextLine is one wrapped display line.
type TextLine struct {
	Type BlockType
	Runs []TextRun
}

// Width returns the line's width in character cells.
func (l TextLine) Width() int {
	w := 0
	for _, r := range l.Runs {
		w += runewidth.StringWidth(r.Text)
	}
	return w
}

// BreakLines word-wraps block into lines at most columns cells wide. Words
// are measured in terminal cells so wide runes count double. A word longer
// than a full line is split. links is the index of the first link span in
// the block; the next unused index is returned.
func BreakLines(block Block, columns, links int) ([]TextLine, int) {
	columns = max(columns, 1)
	var (
		lines []TextLine
		cur   = TextLine{Type: block.Type}
		width int
	)
	flush := func() {
		lines = append(lines, cur)
		cur = TextLine{Type: block.Type}
		width = 0
	}
	add := func(word string, sp Span, link int) {
		ww := runewidth.StringWidth(word)
		if width > 0 && width+1+ww > columns {
			flush()
		}
		if width > 0 {
			// The separating space belongs to the previous run so links are
			// not underlined from a leading blank.
			cur.Runs[len(cur.Runs)-1].Text += " "
			width++
		}
		if n := len(cur.Runs); n > 0 && cur.Runs[n-1].Style == sp.Style && cur.Runs[n-1].Link == link {
			cur.Runs[n-1].Text += word
		} else {
			cur.Runs = append(cur.Runs, TextRun{Text: word, Style: sp.Style, Href: sp.Href, Link: link})
		}
		width += ww
	}

	for _, sp := range block.Spans {
		link := -1
		if sp.Style == RunLink {
			link = links
			links++
		}
		for _, word := range strings.Fields(sp.Text) {
			for runewidth.StringWidth(word) > columns {
				head := runewidth.Truncate(word, columns, "")
				if head == "" {
					break
				}
				if width > 0 {
					flush()
				}
				add(head, sp, link)
				word = word[len(head):]
			}
			if word != "" {
				add(word, sp, link)
			}
		}
	}
	if len(cur.Runs) > 0 || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines, links
}
