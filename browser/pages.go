package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/sapling"
)

// pageFile is the YAML shape of a page fixture.
//
//	url: https://example.com/
//	blocks:
//	  - type: header
//	    text: Welcome
//	  - spans:
//	      - text: "read the "
//	      - text: docs
//	        href: docs.html
type pageFile struct {
	URL    string      `yaml:"url"`
	Blocks []blockFile `yaml:"blocks"`
}

type blockFile struct {
	Type  string     `yaml:"type"`
	Text  string     `yaml:"text"`
	Spans []spanFile `yaml:"spans"`
}

type spanFile struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
	Bold bool   `yaml:"bold"`
}

// ParsePage decodes a YAML page fixture.
func ParsePage(data []byte) (sapling.Page, error) {
	var pf pageFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return sapling.Page{}, fmt.Errorf("parse page: %w", err)
	}
	blocks := make([]sapling.Block, 0, len(pf.Blocks))
	for _, bf := range pf.Blocks {
		b := sapling.Block{Type: sapling.ParseBlockType(bf.Type)}
		if bf.Text != "" {
			b.Spans = append(b.Spans, sapling.Span{Text: bf.Text})
		}
		for _, sf := range bf.Spans {
			sp := sapling.Span{Text: sf.Text}
			switch {
			case sf.Href != "":
				sp.Style, sp.Href = sapling.RunLink, sf.Href
			case sf.Bold:
				sp.Style = sapling.RunBold
			}
			b.Spans = append(b.Spans, sp)
		}
		blocks = append(blocks, b)
	}
	return sapling.NewPage(pf.URL, blocks...), nil
}

// LoadPageFile reads and decodes a YAML page fixture.
func LoadPageFile(name string) (sapling.Page, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return sapling.Page{}, fmt.Errorf("load page: %w", err)
	}
	p, err := ParsePage(data)
	if err != nil {
		return sapling.Page{}, fmt.Errorf("load page %s: %w", name, err)
	}
	return p, nil
}

// Fetcher resolves a URL to a parsed page.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (sapling.Page, error)
}

// ErrNotFound is returned by DirFetcher when no fixture matches a URL.
var ErrNotFound = errors.New("page not found")

// DirFetcher serves YAML page fixtures from a directory. A URL maps to the
// last element of its path with the extension replaced by .yaml; an empty
// path maps to index.yaml.
type DirFetcher struct {
	Dir string
}

// Fetch loads the fixture for rawURL. The page URL is set to rawURL when
// the fixture leaves it empty, so relative links resolve against it.
func (f DirFetcher) Fetch(ctx context.Context, rawURL string) (sapling.Page, error) {
	if err := ctx.Err(); err != nil {
		return sapling.Page{}, err
	}
	file := filepath.Join(f.Dir, FixtureName(rawURL))
	if _, err := os.Stat(file); err != nil {
		return sapling.Page{}, fmt.Errorf("fetch %s: %w", rawURL, ErrNotFound)
	}
	p, err := LoadPageFile(file)
	if err != nil {
		return sapling.Page{}, err
	}
	if p.URL == "" {
		p.URL = rawURL
	}
	return p, nil
}

// FixtureName maps a URL to its fixture file name.
func FixtureName(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	base := path.Base(p)
	if base == "/" || base == "." || base == "" {
		return "index.yaml"
	}
	return strings.TrimSuffix(base, path.Ext(base)) + ".yaml"
}

// Loader serves load requests on its own goroutine and reports results
// through an Inbox. It stands in for the network layer.
type Loader struct {
	Fetcher  Fetcher
	Requests <-chan string
	Inbox    *Inbox
	Log      zerolog.Logger
}

// Run serves requests until ctx is cancelled or Requests is closed.
func (l *Loader) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, ok := <-l.Requests:
			if !ok {
				return nil
			}
			l.serve(ctx, u)
		}
	}
}

func (l *Loader) serve(ctx context.Context, rawURL string) {
	l.Log.Debug().Str("url", rawURL).Msg("loading")
	p, err := l.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		l.Log.Warn().Err(err).Str("url", rawURL).Msg("load failed")
		l.post(LoadFailed{URL: rawURL, Err: err})
		return
	}
	l.post(PageLoaded{Page: p})
}

func (l *Loader) post(m Message) {
	if !l.Inbox.Post(m) {
		l.Log.Warn().Msg("inbox full, dropping message")
	}
}
