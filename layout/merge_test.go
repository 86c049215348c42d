package layout

import (
	"testing"

	"github.com/tsawler/skimmer/model"
)

func span(text string, page int, size, x0, y0, x1, y1 float64) model.TextSpan {
	return model.TextSpan{
		Text:     text,
		Page:     page,
		FontSize: size,
		BBox:     model.NewRect(x0, y0, x1, y1),
	}
}

func TestMergeEmpty(t *testing.T) {
	m := NewBlockMerger()
	if got := m.Merge(nil); len(got) != 0 {
		t.Errorf("Merge(nil) = %v, want empty", got)
	}
	blank := []model.TextSpan{span("   ", 0, 10, 72, 100, 120, 112)}
	if got := m.Merge(blank); len(got) != 0 {
		t.Errorf("Merge of blank spans = %v, want empty", got)
	}
}

func TestMergeJoinsLine(t *testing.T) {
	m := NewBlockMerger()
	spans := []model.TextSpan{
		span("World", 0, 12, 115, 100, 160, 112), // out of x order on purpose
		span("Hello", 0, 12, 72, 100, 110, 112),
	}
	blocks := m.Merge(spans)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "Hello World" {
		t.Errorf("block text = %q, want \"Hello World\"", blocks[0].Text)
	}
	want := model.NewRect(72, 100, 160, 112)
	if blocks[0].BBox != want {
		t.Errorf("block bbox = %+v, want %+v", blocks[0].BBox, want)
	}
}

func TestMergeSeparateLines(t *testing.T) {
	m := NewBlockMerger()
	spans := []model.TextSpan{
		span("First line", 0, 12, 72, 100, 200, 112),
		span("Second line", 0, 12, 72, 130, 200, 142),
	}
	blocks := m.Merge(spans)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Text != "First line" || blocks[1].Text != "Second line" {
		t.Errorf("block order wrong: %q, %q", blocks[0].Text, blocks[1].Text)
	}
}

func TestMergeAdjacentBlocks(t *testing.T) {
	m := NewBlockMerger()
	// Two short visual lines close together, nearly the same size and left
	// edge: the second pass reassembles them into one block.
	spans := []model.TextSpan{
		span("A Heading Split", 0, 9.0, 72, 100, 300, 104),
		span("Across Lines", 0, 9.2, 76, 105, 280, 109),
	}
	blocks := m.Merge(spans)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 merged block", len(blocks))
	}
	if blocks[0].Text != "A Heading Split Across Lines" {
		t.Errorf("merged text = %q", blocks[0].Text)
	}
}

func TestMergeAdjacentRejectsSizeDelta(t *testing.T) {
	m := NewBlockMerger()
	spans := []model.TextSpan{
		span("Heading", 0, 9.0, 72, 100, 300, 104),
		span("body text", 0, 9.6, 76, 105, 280, 109),
	}
	blocks := m.Merge(spans)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2 (size delta 0.6 must not merge)", len(blocks))
	}
}

func TestMergeAdjacentRejectsIndent(t *testing.T) {
	m := NewBlockMerger()
	spans := []model.TextSpan{
		span("Left column", 0, 9.0, 72, 100, 200, 104),
		span("Right column", 0, 9.0, 320, 105, 500, 109),
	}
	blocks := m.Merge(spans)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2 (horizontal offset must not merge)", len(blocks))
	}
}

func TestMergePageOrder(t *testing.T) {
	m := NewBlockMerger()
	spans := []model.TextSpan{
		span("page two", 1, 10, 72, 100, 200, 110),
		span("page one", 0, 10, 72, 100, 200, 110),
	}
	blocks := m.Merge(spans)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Page != 0 || blocks[1].Page != 1 {
		t.Errorf("pages out of order: %d, %d", blocks[0].Page, blocks[1].Page)
	}
}

func TestMergeLastSpanStyleWins(t *testing.T) {
	m := NewBlockMerger()
	spans := []model.TextSpan{
		{Text: "Intro", Page: 0, FontName: "Helvetica", FontSize: 10,
			BBox: model.NewRect(72, 100, 110, 110)},
		{Text: "duction", Page: 0, FontName: "Helvetica-Bold", FontSize: 10.2, Bold: true,
			BBox: model.NewRect(112, 100, 160, 110)},
	}
	blocks := m.Merge(spans)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if !b.Bold || b.Font.Name != "Helvetica-Bold" || b.Font.Size != 10.2 {
		t.Errorf("last span style should win: %+v", b)
	}
}
