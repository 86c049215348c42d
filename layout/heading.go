package layout

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/skimmer/model"
	"github.com/tsawler/skimmer/text"
)

// headingPatterns is the fixed regex library of heading shapes. Patterns are
// anchored at the start of the block text. The ALL CAPS and Title Case
// patterns are deliberately case-sensitive; everything else matches
// case-insensitively.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(Chapter|Section|Part|Appendix|Article)\s+\d+`),
	regexp.MustCompile(`^\d+\.\s+`),       // 1. Introduction
	regexp.MustCompile(`^\d+\.\d+\s+`),    // 1.1 Overview
	regexp.MustCompile(`^\d+\.\d+\.\d+\s+`), // 1.1.1 Details
	regexp.MustCompile(`^[A-Z][A-Z\s]+$`), // ALL CAPS
	regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+)*$`), // Title Case
	regexp.MustCompile(`^[IVXLCDM]+\.\s+`),               // Roman numerals
	regexp.MustCompile(`^[A-Z]\.\s+`),                    // A. B. C.
	regexp.MustCompile(`(?i)^(Abstract|Introduction|Methodology|Results|Discussion|Conclusion|References|Summary|Background|Overview|Analysis|Recommendations|Appendix|Preface|Foreword)$`),
	regexp.MustCompile(`^第\d+章|^第\d+節`), // CJK chapter/section markers
	regexp.MustCompile(`^\d+\s+[A-Za-z]+$`), // "1 Introduction"
	regexp.MustCompile(`(?i)^Part\s+[A-Z]$`),
}

// numberPrefixPatterns detect numbering/lettering/roman-numeral prefixes for
// the case-and-structure bonus.
var numberPrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.`),
	regexp.MustCompile(`^[A-Z]\.`),
	regexp.MustCompile(`^[IVXLCDM]+\.`),
}

// headingKeywords maps language tags to heading keyword lists. The academic,
// business and technical lists ship as configuration; lookup is keyed by
// detected language with an English fallback.
var headingKeywords = map[text.Language][]string{
	text.LanguageEnglish: {
		"summary", "introduction", "methodology", "results", "discussion",
		"conclusion", "background", "analysis", "approach", "findings",
		"recommendations", "abstract", "overview", "objectives", "scope",
		"implementation", "evaluation", "appendix", "preface", "executive",
		"strategy", "performance",
	},
	text.LanguageJapanese: {
		"序論", "結論", "要約", "概要", "背景", "方法", "結果", "考察", "参考文献",
	},
	"academic": {
		"literature review", "related work", "experimental setup", "dataset",
		"performance", "benchmarks", "comparative analysis", "validation",
	},
	"business": {
		"executive summary", "strategy", "performance", "analysis", "recommendations",
	},
	"technical": {
		"architecture", "design", "implementation", "testing", "deployment",
	},
}

// ScoreConfig holds the acceptance thresholds of the heading classifier.
type ScoreConfig struct {
	// MinScore is the minimum score for a block to be a heading at all.
	// Default: 40
	MinScore float64

	// H1Score, H2Score, H3Score are the score routes into each tier; font
	// size and score are alternative routes, either alone promotes a block.
	// Defaults: 85, 70, 55
	H1Score float64
	H2Score float64
	H3Score float64

	// SpatialGap is the vertical whitespace (layout units) around a block
	// that earns the isolation bonus. Default: 1.0
	SpatialGap float64
}

// DefaultScoreConfig returns the standard thresholds.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		MinScore:   40,
		H1Score:    85,
		H2Score:    70,
		H3Score:    55,
		SpatialGap: 1.0,
	}
}

// HeadingScorer assigns a heading-likelihood score to blocks and classifies
// accepted blocks into tiers H1-H4. All state is immutable configuration;
// one scorer is safe for concurrent use across documents.
type HeadingScorer struct {
	config   ScoreConfig
	patterns []*regexp.Regexp
	prefixes []*regexp.Regexp
	keywords map[text.Language][]string
	exclude  *text.ExclusionFilter
}

// NewHeadingScorer creates a scorer with the standard tables and thresholds.
func NewHeadingScorer() *HeadingScorer {
	return NewHeadingScorerWithConfig(DefaultScoreConfig())
}

// NewHeadingScorerWithConfig creates a scorer with custom thresholds.
func NewHeadingScorerWithConfig(config ScoreConfig) *HeadingScorer {
	return &HeadingScorer{
		config:   config,
		patterns: headingPatterns,
		prefixes: numberPrefixPatterns,
		keywords: headingKeywords,
		exclude:  text.NewExclusionFilter(),
	}
}

// Score computes the additive heading score for a block. Each contribution is
// independent: font-size tier, bold/italic style, pattern match, keyword hit,
// length, case and structure, and spatial isolation from its neighbors.
// Text rejected by the exclusion filter always scores 0.
func (s *HeadingScorer) Score(block model.Block, fonts FontAnalysis, prev, next *model.Block) float64 {
	if s.exclude.Excluded(block.Text) {
		return 0
	}

	score := 0.0

	// Font-size tier: highest matching tier only.
	switch size := block.Font.Size; {
	case size >= fonts.H1Threshold:
		score += 40
	case size >= fonts.H2Threshold:
		score += 35
	case size >= fonts.H3Threshold:
		score += 30
	case size >= fonts.H4Threshold:
		score += 25
	}

	if block.Bold {
		score += 45
	}
	if block.Italic {
		score += 15
	}

	for _, p := range s.patterns {
		if p.MatchString(block.Text) {
			score += 50
			break
		}
	}

	lower := strings.ToLower(block.Text)
	for _, kw := range s.keywordsFor(block.Text) {
		if strings.Contains(lower, kw) {
			score += 20
			break
		}
	}

	words := len(strings.Fields(block.Text))
	switch {
	case words <= 7:
		score += 50
	case words <= 12:
		score += 35
	case words <= 20:
		score += 20
	default:
		score -= float64(words-20) * 0.3
	}

	if isAllUpper(block.Text) {
		score += 25
	} else if isTitleCase(block.Text) {
		score += 20
	}
	for _, p := range s.prefixes {
		if p.MatchString(block.Text) {
			score += 25
			break
		}
	}

	// Spatial isolation: both neighbors must exist.
	if prev != nil && next != nil {
		before := prev.BBox.GapTo(block.BBox)
		after := block.BBox.GapTo(next.BBox)
		if before > s.config.SpatialGap || after > s.config.SpatialGap {
			score += 30
		}
	}

	return score
}

// Classify maps a score and font size to a heading tier. Blocks under
// MinScore are rejected. Font size and score are alternative routes into the
// same tier: either signal alone can promote a block.
func (s *HeadingScorer) Classify(score, fontSize float64, fonts FontAnalysis) model.HeadingLevel {
	if score < s.config.MinScore {
		return model.LevelNone
	}
	switch {
	case fontSize >= fonts.H1Threshold || score >= s.config.H1Score:
		return model.LevelH1
	case fontSize >= fonts.H2Threshold || score >= s.config.H2Score:
		return model.LevelH2
	case fontSize >= fonts.H3Threshold || score >= s.config.H3Score:
		return model.LevelH3
	default:
		return model.LevelH4
	}
}

// keywordsFor returns the keyword list for the block's detected language,
// falling back to English.
func (s *HeadingScorer) keywordsFor(blockText string) []string {
	if kws, ok := s.keywords[text.DetectLanguage(blockText)]; ok {
		return kws
	}
	return s.keywords[text.LanguageEnglish]
}

// isAllUpper reports whether the text has at least one cased rune and no
// lowercase runes.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// isTitleCase reports whether every cased word starts uppercase and continues
// lowercase, with at least one cased rune.
func isTitleCase(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}
