package layout

import (
	"math"
	"sort"

	"github.com/tsawler/skimmer/model"
)

// FontAnalysis holds the body-text size and the four heading-size thresholds
// derived from a document's font-size distribution. Thresholds are taken from
// the distinct sizes in descending order, so with four or more distinct sizes
// H1Threshold >= H2Threshold >= H3Threshold >= H4Threshold. Once computed, a
// FontAnalysis is read-only and may be shared across a document batch so that
// heading tiers stay comparable across the set.
type FontAnalysis struct {
	BodySize    float64
	H1Threshold float64
	H2Threshold float64
	H3Threshold float64
	H4Threshold float64
}

// DefaultFontAnalysis is the documented fallback used when a document yields
// no font sizes at all.
func DefaultFontAnalysis() FontAnalysis {
	return FontAnalysis{
		BodySize:    10,
		H1Threshold: 12,
		H2Threshold: 11,
		H3Threshold: 10,
		H4Threshold: 9,
	}
}

// FontAnalyzer derives a FontAnalysis from the blocks of a document.
type FontAnalyzer struct{}

// NewFontAnalyzer creates a FontAnalyzer.
func NewFontAnalyzer() *FontAnalyzer {
	return &FontAnalyzer{}
}

// Analyze builds a frequency histogram of block font sizes rounded to one
// decimal. The most frequent size becomes the body size; the four largest
// distinct sizes become the H1-H4 thresholds, with fallback formulas when
// fewer distinct sizes exist.
func (a *FontAnalyzer) Analyze(blocks []model.Block) FontAnalysis {
	counts := make(map[float64]int)
	var order []float64 // first-encounter order, for deterministic ties
	for _, b := range blocks {
		if b.Font.Size <= 0 {
			continue
		}
		size := roundTenth(b.Font.Size)
		if _, seen := counts[size]; !seen {
			order = append(order, size)
		}
		counts[size]++
	}
	if len(order) == 0 {
		return DefaultFontAnalysis()
	}

	bodySize := order[0]
	for _, size := range order {
		if counts[size] > counts[bodySize] {
			bodySize = size
		}
	}

	distinct := append([]float64(nil), order...)
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	fa := FontAnalysis{BodySize: bodySize}
	fa.H1Threshold = pick(distinct, 0, bodySize+0.5)
	fa.H2Threshold = pick(distinct, 1, bodySize)
	fa.H3Threshold = pick(distinct, 2, bodySize-0.5)
	fa.H4Threshold = pick(distinct, 3, math.Max(9, bodySize-1))
	return fa
}

// pick returns the i-th largest distinct size, or the fallback when fewer
// distinct sizes exist.
func pick(distinct []float64, i int, fallback float64) float64 {
	if i < len(distinct) {
		return distinct[i]
	}
	return fallback
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
