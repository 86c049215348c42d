package layout

import (
	"strings"

	"github.com/tsawler/skimmer/model"
	"github.com/tsawler/skimmer/text"
)

// TitleConfig holds the knobs of title selection.
type TitleConfig struct {
	// MaxCandidates is how many leading blocks are examined. Default: 8
	MaxCandidates int

	// SpatialGap is the vertical whitespace around a candidate that earns
	// the isolation bonus. Default: 1.5
	SpatialGap float64
}

// DefaultTitleConfig returns the standard title-selection knobs.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxCandidates: 8,
		SpatialGap:    1.5,
	}
}

// TitleSelector picks the most title-like block from the start of the first
// page: large font, early position, moderate length, bold, and isolated by
// whitespace.
type TitleSelector struct {
	config  TitleConfig
	exclude *text.ExclusionFilter
}

// NewTitleSelector creates a selector with default configuration.
func NewTitleSelector() *TitleSelector {
	return NewTitleSelectorWithConfig(DefaultTitleConfig())
}

// NewTitleSelectorWithConfig creates a selector with custom configuration.
func NewTitleSelectorWithConfig(config TitleConfig) *TitleSelector {
	return &TitleSelector{
		config:  config,
		exclude: text.NewExclusionFilter(),
	}
}

// Select returns the chosen title, or "" when no candidate qualifies.
// Callers may substitute a filename fallback for the empty string.
func (t *TitleSelector) Select(blocks []model.Block) string {
	if len(blocks) == 0 {
		return ""
	}

	maxFont := 10.0
	for _, b := range blocks {
		if b.Font.Size > maxFont {
			maxFont = b.Font.Size
		}
	}

	limit := t.config.MaxCandidates
	if limit > len(blocks) {
		limit = len(blocks)
	}

	best := ""
	bestScore := 0.0
	found := false
	for i := 0; i < limit; i++ {
		block := blocks[i]
		if block.Page != 0 {
			continue
		}
		if t.exclude.Excluded(block.Text) {
			continue
		}
		score := t.scoreCandidate(blocks, i, maxFont)
		// Ties break toward the earliest position.
		if !found || score > bestScore {
			found = true
			best = block.Text
			bestScore = score
		}
	}
	return best
}

// scoreCandidate scores one candidate block: font size at or near the
// document maximum, early position, moderate word count, bold/italic style,
// and whitespace isolation.
func (t *TitleSelector) scoreCandidate(blocks []model.Block, i int, maxFont float64) float64 {
	block := blocks[i]
	score := 0.0

	switch size := block.Font.Size; {
	case size >= maxFont:
		score += 60
	case size >= maxFont-0.5:
		score += 50
	case size >= maxFont-1:
		score += 40
	}

	if positional := 40 - float64(i)*5; positional > 0 {
		score += positional
	}

	switch words := len(strings.Fields(block.Text)); {
	case words >= 3 && words <= 20:
		score += 40
	case words <= 2:
		score -= 25
	case words > 30:
		score -= 20
	}

	if block.Bold {
		score += 35
	}
	if block.Italic {
		score += 15
	}

	if i > 0 && i < len(blocks)-1 {
		before := blocks[i-1].BBox.GapTo(block.BBox)
		after := block.BBox.GapTo(blocks[i+1].BBox)
		if before > t.config.SpatialGap || after > t.config.SpatialGap {
			score += 25
		}
	}
	return score
}
