package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/skimmer/model"
)

// SectionAssembler groups classified blocks into (heading, body) sections in
// document order. It runs a two-state scan: while no section is open, body
// text is dropped (it precedes the first heading); once a heading opens a
// section, every following non-heading block joins its body until the next
// heading or the end of the page closes it.
type SectionAssembler struct {
	scorer *HeadingScorer
}

// NewSectionAssembler creates an assembler using the given scorer.
func NewSectionAssembler(scorer *HeadingScorer) *SectionAssembler {
	return &SectionAssembler{scorer: scorer}
}

// Assemble scans blocks in document order (page, then position within page)
// and returns the deduplicated, ordered sections. No two sections in the
// result share the same (heading, page) pair. Ordering is page ascending,
// then score descending within a page: importance first, not reading order.
func (a *SectionAssembler) Assemble(blocks []model.Block, fonts FontAnalysis) []model.Section {
	var sections []model.Section
	var open *model.Section

	for i, block := range blocks {
		// A page boundary closes the open section; body on the new page
		// is dropped until its first heading.
		if open != nil && i > 0 && block.Page != blocks[i-1].Page {
			sections = append(sections, *open)
			open = nil
		}

		var prev, next *model.Block
		if i > 0 {
			prev = &blocks[i-1]
		}
		if i < len(blocks)-1 {
			next = &blocks[i+1]
		}

		score := a.scorer.Score(block, fonts, prev, next)
		level := a.scorer.Classify(score, block.Font.Size, fonts)
		if level.IsHeading() {
			if open != nil {
				sections = append(sections, *open)
			}
			open = &model.Section{
				Heading: block.Text,
				Level:   level,
				Page:    block.Page,
				Score:   score,
			}
			continue
		}
		if open != nil && strings.TrimSpace(block.Text) != "" {
			open.Body = append(open.Body, block.Text)
		}
	}
	if open != nil {
		sections = append(sections, *open)
	}

	sections = dedupe(sections)
	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].Page != sections[j].Page {
			return sections[i].Page < sections[j].Page
		}
		return sections[i].Score > sections[j].Score
	})
	return sections
}

// dedupe drops any section whose (heading, page) pair duplicates an earlier
// one.
func dedupe(sections []model.Section) []model.Section {
	type key struct {
		heading string
		page    int
	}
	seen := make(map[key]bool, len(sections))
	unique := sections[:0]
	for _, s := range sections {
		k := key{s.Heading, s.Page}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, s)
	}
	return unique
}
