package htmlspan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/skimmer/model"
)

// tagStyle is the synthetic font applied to an element's text.
type tagStyle struct {
	size float64
	bold bool
	gap  float64 // extra vertical whitespace before the element
}

// tagStyles maps block-level tags to browser-default-like font metrics.
// Body text stays at 10pt so it dominates the font histogram.
var tagStyles = map[string]tagStyle{
	"h1":         {size: 24, bold: true, gap: 16},
	"h2":         {size: 18, bold: true, gap: 12},
	"h3":         {size: 14, bold: true, gap: 8},
	"h4":         {size: 12, bold: true, gap: 6},
	"h5":         {size: 11, bold: true, gap: 4},
	"h6":         {size: 10.5, bold: true, gap: 4},
	"title":      {size: 28, bold: true, gap: 20},
	"p":          {size: 10, gap: 2},
	"li":         {size: 10, gap: 1},
	"blockquote": {size: 10, gap: 2},
	"td":         {size: 10, gap: 1},
	"pre":        {size: 9, gap: 2},
}

const pageHeight = 792.0

// Load reads an HTML file and converts it into a span document.
func Load(path string) (model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// Parse converts HTML from a reader into a span document named name.
// Content flows onto synthetic pages of a fixed height so that page-based
// heuristics (title on page 0, page numbers in output) behave sensibly.
func Parse(r io.Reader, name string) (model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return model.Document{}, fmt.Errorf("parsing HTML: %w", err)
	}

	w := &walker{}
	w.walk(root)
	return model.Document{Name: name, Spans: w.spans}, nil
}

// walker accumulates spans while traversing the node tree, tracking a
// synthetic vertical cursor.
type walker struct {
	spans []model.TextSpan
	y     float64
	page  int
}

func (w *walker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head":
			if n.Data == "head" {
				// Keep only the document title from the head.
				w.emitTitle(n)
			}
			return
		}
		if style, ok := tagStyles[n.Data]; ok {
			if text := collectText(n); text != "" {
				w.emit(text, style)
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// emitTitle finds <title> under the head node and emits it as the first,
// largest span.
func (w *walker) emitTitle(head *html.Node) {
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "title" {
			if text := collectText(c); text != "" {
				w.emit(text, tagStyles["title"])
			}
			return
		}
	}
}

func (w *walker) emit(text string, style tagStyle) {
	w.y += style.gap
	lineHeight := style.size * 1.4
	if w.y+lineHeight > pageHeight {
		w.page++
		w.y = 0
	}
	w.spans = append(w.spans, model.TextSpan{
		Text:     text,
		Page:     w.page,
		FontName: "synthetic",
		FontSize: style.size,
		Bold:     style.bold,
		BBox: model.NewRect(
			0,
			w.y,
			float64(len(text))*style.size*0.5,
			w.y+lineHeight,
		),
	})
	w.y += lineHeight
}

// collectText gathers and whitespace-normalizes the text below a node.
func collectText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
