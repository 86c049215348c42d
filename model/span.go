package model

// TextSpan is a single styled fragment of text as delivered by an external
// document renderer: the text itself plus the font metadata and bounding box
// needed for structural analysis. Spans are immutable input; the engine never
// modifies them.
type TextSpan struct {
	// Text is the raw fragment text.
	Text string

	// Page is the 0-indexed page the span appears on.
	Page int

	// FontName is the renderer-reported font name, if any.
	FontName string

	// FontSize is the font size in points.
	FontSize float64

	// Bold and Italic are the renderer's style flags.
	Bold   bool
	Italic bool

	// BBox is the span's bounding box in page coordinates.
	BBox Rect
}

// Document is a named, page-ordered sequence of spans for one source document.
type Document struct {
	// Name identifies the document (typically the source file name).
	Name string

	// Spans are the renderer's text spans in reading order.
	Spans []TextSpan
}

// PageCount returns the number of pages spanned by the document,
// derived from the highest page index present.
func (d Document) PageCount() int {
	max := -1
	for _, s := range d.Spans {
		if s.Page > max {
			max = s.Page
		}
	}
	return max + 1
}

// FontInfo describes the dominant font of a merged block.
type FontInfo struct {
	// Name is the font name of the block's last contributing span.
	Name string

	// Size is the font size in points.
	Size float64

	// BBox is the bounding box of the contributing span.
	BBox Rect
}

// Block is a merged group of spans treated as one structural unit for
// classification: a visual line or reassembled multi-line fragment.
type Block struct {
	// Text is the merged, normalized text of the block.
	Text string

	// Page is the 0-indexed page the block appears on.
	Page int

	// Font describes the block's dominant font.
	Font FontInfo

	// BBox is the union of the contributing span boxes.
	BBox Rect

	// Bold and Italic are the block's style flags.
	Bold   bool
	Italic bool
}
