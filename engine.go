package skimmer

import (
	"github.com/tsawler/skimmer/layout"
	"github.com/tsawler/skimmer/model"
	"github.com/tsawler/skimmer/relevance"
	"github.com/tsawler/skimmer/text"
)

// Config holds engine-level configuration.
type Config struct {
	// MaxPages is the page cap; documents exceeding it yield an empty
	// result instead of being processed. Default: 50
	MaxPages int

	// Merge configures span-to-block merging.
	Merge layout.MergeConfig

	// Score configures heading scoring and classification.
	Score layout.ScoreConfig

	// Title configures title selection.
	Title layout.TitleConfig
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxPages: 50,
		Merge:    layout.DefaultMergeConfig(),
		Score:    layout.DefaultScoreConfig(),
		Title:    layout.DefaultTitleConfig(),
	}
}

// Engine is the document-structure and relevance-scoring engine. All of its
// state is immutable configuration built at construction; it is safe to share
// one Engine across concurrent document-processing calls.
type Engine struct {
	config    Config
	norm      *text.Normalizer
	merger    *layout.BlockMerger
	fonts     *layout.FontAnalyzer
	assembler *layout.SectionAssembler
	titles    *layout.TitleSelector
	relevance *relevance.Scorer
}

// New creates an engine with default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(config Config) *Engine {
	scorer := layout.NewHeadingScorerWithConfig(config.Score)
	return &Engine{
		config:    config,
		norm:      text.NewNormalizer(),
		merger:    layout.NewBlockMergerWithConfig(config.Merge),
		fonts:     layout.NewFontAnalyzer(),
		assembler: layout.NewSectionAssembler(scorer),
		titles:    layout.NewTitleSelectorWithConfig(config.Title),
		relevance: relevance.NewScorer(),
	}
}

// Result is the single-document output shape. Outline is never nil, so the
// empty result serializes as {"title":"","outline":[]}.
type Result struct {
	Title   string               `json:"title"`
	Outline []model.OutlineEntry `json:"outline"`
}

// Outline runs the single-document pipeline: normalize, merge, analyze fonts,
// score and classify headings, assemble sections, select the title. Oversized
// or empty documents degrade to the empty result; nothing here fails.
func (e *Engine) Outline(doc model.Document) Result {
	a := e.analyze(doc, nil)
	return Result{Title: a.Title, Outline: a.Outline}
}

// analysis is the internal per-document result, carrying the sections and
// font analysis the collection orchestrator needs beyond the public shape.
type analysis struct {
	Title    string
	Outline  []model.OutlineEntry
	Sections []model.Section
	Fonts    layout.FontAnalysis
	HasFonts bool
}

func emptyAnalysis() analysis {
	return analysis{Outline: []model.OutlineEntry{}}
}

// analyze processes one document. When shared is non-nil it is used instead
// of deriving a fresh font analysis, keeping heading tiers comparable across
// a batch.
func (e *Engine) analyze(doc model.Document, shared *layout.FontAnalysis) analysis {
	if doc.PageCount() > e.config.MaxPages {
		return emptyAnalysis()
	}

	spans := make([]model.TextSpan, 0, len(doc.Spans))
	for _, s := range doc.Spans {
		s.Text = e.norm.Clean(s.Text)
		if s.Text == "" {
			continue
		}
		spans = append(spans, s)
	}

	blocks := e.merger.Merge(spans)
	if len(blocks) == 0 {
		return emptyAnalysis()
	}

	var fonts layout.FontAnalysis
	if shared != nil {
		fonts = *shared
	} else {
		fonts = e.fonts.Analyze(blocks)
	}

	sections := e.assembler.Assemble(blocks, fonts)
	outline := make([]model.OutlineEntry, 0, len(sections))
	for _, s := range sections {
		outline = append(outline, model.OutlineEntry{
			Level: s.Level,
			Text:  s.Heading,
			Page:  s.Page + 1,
		})
	}

	return analysis{
		Title:    e.titles.Select(blocks),
		Outline:  outline,
		Sections: sections,
		Fonts:    fonts,
		HasFonts: true,
	}
}
