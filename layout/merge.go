package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/skimmer/model"
)

// MergeConfig holds the tolerances used when grouping spans into blocks.
type MergeConfig struct {
	// LineTolerance is the Y-distance tolerance for grouping spans into the
	// same visual line, as a fraction of average span height.
	// Default: 0.5
	LineTolerance float64

	// MaxVerticalOffset is the maximum difference between two blocks'
	// vertical start positions for them to merge. Default: 6
	MaxVerticalOffset float64

	// MaxHorizontalOffset is the maximum difference between two blocks'
	// horizontal start positions for them to merge. Default: 50
	MaxHorizontalOffset float64

	// MaxSizeDelta is the maximum font-size difference between two blocks
	// for them to merge. Default: 0.5
	MaxSizeDelta float64
}

// DefaultMergeConfig returns the standard merge tolerances.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		LineTolerance:       0.5,
		MaxVerticalOffset:   6,
		MaxHorizontalOffset: 50,
		MaxSizeDelta:        0.5,
	}
}

// BlockMerger groups renderer spans into logical text blocks. Spans are first
// grouped into visual lines, one line per block, and a second pass combines
// adjacent blocks of consistent font size and position, reassembling a
// heading or paragraph the renderer split across short visual lines.
type BlockMerger struct {
	config MergeConfig
}

// NewBlockMerger creates a merger with default tolerances.
func NewBlockMerger() *BlockMerger {
	return &BlockMerger{config: DefaultMergeConfig()}
}

// NewBlockMergerWithConfig creates a merger with custom tolerances.
func NewBlockMergerWithConfig(config MergeConfig) *BlockMerger {
	return &BlockMerger{config: config}
}

// Merge converts spans into blocks, page by page, preserving page order.
// Spans with empty text are ignored.
func (m *BlockMerger) Merge(spans []model.TextSpan) []model.Block {
	if len(spans) == 0 {
		return nil
	}

	byPage := make(map[int][]model.TextSpan)
	var pages []int
	for _, s := range spans {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		if _, seen := byPage[s.Page]; !seen {
			pages = append(pages, s.Page)
		}
		byPage[s.Page] = append(byPage[s.Page], s)
	}
	sort.Ints(pages)

	var blocks []model.Block
	for _, page := range pages {
		lines := m.groupIntoLines(byPage[page])
		pageBlocks := make([]model.Block, 0, len(lines))
		for _, line := range lines {
			pageBlocks = append(pageBlocks, lineToBlock(line, page))
		}
		blocks = append(blocks, m.mergeAdjacent(pageBlocks)...)
	}
	return blocks
}

// groupIntoLines groups spans sharing a vertical position into visual lines,
// ordered top to bottom, spans within a line left to right.
func (m *BlockMerger) groupIntoLines(spans []model.TextSpan) [][]model.TextSpan {
	sorted := make([]model.TextSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		tolerance := (a.BBox.Height() + b.BBox.Height()) / 2 * m.config.LineTolerance
		if math.Abs(a.BBox.Y0-b.BBox.Y0) > tolerance {
			return a.BBox.Y0 < b.BBox.Y0
		}
		return a.BBox.X0 < b.BBox.X0
	})

	var lines [][]model.TextSpan
	var current []model.TextSpan
	for _, s := range sorted {
		if len(current) == 0 {
			current = append(current, s)
			continue
		}
		last := current[len(current)-1]
		tolerance := (s.BBox.Height() + last.BBox.Height()) / 2 * m.config.LineTolerance
		if math.Abs(s.BBox.Y0-last.BBox.Y0) <= tolerance {
			current = append(current, s)
		} else {
			lines = append(lines, current)
			current = []model.TextSpan{s}
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// lineToBlock joins a line's spans into one block. The last span's font wins,
// matching the renderer convention for style runs.
func lineToBlock(line []model.TextSpan, page int) model.Block {
	var parts []string
	bbox := line[0].BBox
	for _, s := range line {
		parts = append(parts, s.Text)
		bbox = bbox.Union(s.BBox)
	}
	last := line[len(line)-1]
	return model.Block{
		Text: strings.Join(parts, " "),
		Page: page,
		Font: model.FontInfo{
			Name: last.FontName,
			Size: last.FontSize,
			BBox: last.BBox,
		},
		BBox:   bbox,
		Bold:   last.Bold,
		Italic: last.Italic,
	}
}

// mergeAdjacent combines adjacent blocks whose vertical starts differ by less
// than MaxVerticalOffset, horizontal starts by less than MaxHorizontalOffset,
// and font sizes by less than MaxSizeDelta. The pass is single, left to
// right; a combined block may merge again with the block that follows it.
func (m *BlockMerger) mergeAdjacent(blocks []model.Block) []model.Block {
	if len(blocks) == 0 {
		return nil
	}
	merged := make([]model.Block, 0, len(blocks))
	current := blocks[0]
	for _, next := range blocks[1:] {
		if math.Abs(current.BBox.Y0-next.BBox.Y0) < m.config.MaxVerticalOffset &&
			math.Abs(current.BBox.X0-next.BBox.X0) < m.config.MaxHorizontalOffset &&
			math.Abs(current.Font.Size-next.Font.Size) < m.config.MaxSizeDelta {
			current.Text += " " + next.Text
			current.BBox = current.BBox.Union(next.BBox)
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
