package pdfspan

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Geek0x0/pdf"

	"github.com/tsawler/skimmer/model"
)

// lineTolerance is the maximum baseline difference, in points, for two runs
// to share a line.
const lineTolerance = 0.2

// Load reads a PDF file and converts its text content into a page-ordered
// span document.
func Load(path string) (model.Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc := model.Document{Name: filepath.Base(path)}
	for num := 1; num <= r.NumPage(); num++ {
		page := r.Page(num)
		if page.V.IsNull() {
			continue
		}
		doc.Spans = append(doc.Spans, pageSpans(page, num-1)...)
	}
	return doc, nil
}

// pageSpans converts one page's text runs into spans. Coordinates flip from
// the PDF's bottom-up convention to the top-down convention the engine uses.
func pageSpans(page pdf.Page, pageIndex int) []model.TextSpan {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	pageHeight := 792.0 // US Letter fallback
	if mb := page.V.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
		pageHeight = mb.Index(3).Float64() - mb.Index(1).Float64()
	}

	runs := make([]pdf.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if t.Vertical || t.S == "" {
			continue
		}
		runs = append(runs, t)
	}
	// Top of page first, then left to right.
	sort.SliceStable(runs, func(i, j int) bool {
		if math.Abs(runs[i].Y-runs[j].Y) > lineTolerance {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var spans []model.TextSpan
	var b strings.Builder
	var first, last pdf.Text
	flush := func() {
		if b.Len() == 0 {
			return
		}
		spans = append(spans, model.TextSpan{
			Text:     b.String(),
			Page:     pageIndex,
			FontName: first.Font,
			FontSize: first.FontSize,
			Bold:     first.Bold,
			Italic:   first.Italic,
			BBox: model.NewRect(
				first.X,
				pageHeight-first.Y-first.FontSize,
				last.X+last.W,
				pageHeight-first.Y,
			),
		})
		b.Reset()
	}

	for _, t := range runs {
		if b.Len() > 0 && !sameSpan(last, t) {
			flush()
		}
		if b.Len() == 0 {
			first = t
		} else if gap := t.X - (last.X + last.W); gap > t.FontSize*0.15 {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		last = t
	}
	flush()
	return spans
}

// sameSpan reports whether a run continues the current span: same font and
// size, same baseline, and no column-sized horizontal jump.
func sameSpan(prev, cur pdf.Text) bool {
	if cur.Font != prev.Font || cur.FontSize != prev.FontSize {
		return false
	}
	if math.Abs(cur.Y-prev.Y) > lineTolerance {
		return false
	}
	gap := cur.X - (prev.X + prev.W)
	return gap <= cur.FontSize*2
}
