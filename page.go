package sapling

import (
	"net/url"
	"strings"
)

// BlockType classifies a page block. It drives the font and whether a bullet
// is drawn.
type BlockType uint8

const (
	BlockParagraph BlockType = iota
	BlockHeader
	BlockListItem
)

func (t BlockType) String() string {
	switch t {
	case BlockHeader:
		return "header"
	case BlockListItem:
		return "listitem"
	default:
		return "paragraph"
	}
}

// ParseBlockType is the inverse of BlockType.String. Unknown names are
// paragraphs.
func ParseBlockType(name string) BlockType {
	switch strings.ToLower(name) {
	case "header", "h1", "h2", "h3":
		return BlockHeader
	case "listitem", "li":
		return BlockListItem
	default:
		return BlockParagraph
	}
}

// RunStyle is the inline style of a span of text.
type RunStyle uint8

const (
	RunPlain RunStyle = iota
	RunBold
	RunLink
)

// Span is a run of text sharing one style. Href is set for links.
type Span struct {
	Text  string
	Style RunStyle
	Href  string
}

// Block is one paragraph, header or list item of a parsed page.
type Block struct {
	Type  BlockType
	Spans []Span
}

// NewBlock creates a block holding a single plain span.
func NewBlock(t BlockType, text string) Block {
	return Block{Type: t, Spans: []Span{{Text: text}}}
}

// Text returns the block's text with styling removed.
func (b Block) Text() string {
	var sb strings.Builder
	for _, sp := range b.Spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// Page is a parsed document as produced by the (external) HTML layer.
// Selection is the index of the selected link among Links, or -1.
type Page struct {
	URL       string
	Blocks    []Block
	Selection int
	Links     []string
}

// NewPage creates a page with its link list collected from the blocks and
// no link selected.
func NewPage(rawURL string, blocks ...Block) Page {
	p := Page{URL: rawURL, Blocks: blocks, Selection: -1}
	p.Links = p.collectLinks()
	return p
}

func (p Page) collectLinks() []string {
	var links []string
	for _, b := range p.Blocks {
		for _, sp := range b.Spans {
			if sp.Style == RunLink {
				links = append(links, sp.Href)
			}
		}
	}
	return links
}

// Resolve turns href into an absolute URL. An href with a scheme is
// returned as is; anything else is appended to the page URL.
func (p Page) Resolve(href string) string {
	if u, err := url.Parse(href); err == nil && u.IsAbs() {
		return href
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return p.URL + href
}
