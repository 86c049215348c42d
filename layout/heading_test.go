package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/skimmer/model"
)

var testFonts = FontAnalysis{
	BodySize:    10,
	H1Threshold: 16,
	H2Threshold: 14,
	H3Threshold: 12,
	H4Threshold: 11,
}

func headingBlock(text string, size float64, bold bool, y0, y1 float64) model.Block {
	return model.Block{
		Text: text,
		Page: 0,
		Font: model.FontInfo{Size: size},
		BBox: model.NewRect(72, y0, 400, y1),
		Bold: bold,
	}
}

func TestScoreNumberedBoldHeading(t *testing.T) {
	s := NewHeadingScorer()
	prev := headingBlock("preceding paragraph text that ends well above", 10, false, 60, 80)
	block := headingBlock("1. Introduction", 16, true, 100, 116)
	next := headingBlock("following paragraph text that starts well below", 10, false, 140, 160)

	score := s.Score(block, testFonts, &prev, &next)
	if score < 85 {
		t.Fatalf("score = %v, want >= 85", score)
	}
	if level := s.Classify(score, block.Font.Size, testFonts); level != model.LevelH1 {
		t.Errorf("Classify = %v, want H1", level)
	}
}

func TestScoreLongParagraphRejected(t *testing.T) {
	s := NewHeadingScorer()
	body := strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet ", 7)) // 35 words
	block := headingBlock(body, 10, false, 100, 140)

	if score := s.Score(block, testFonts, nil, nil); score >= 40 {
		t.Errorf("35-word paragraph scored %v, want below 40", score)
	}
}

func TestScoreExcludedTextIsZero(t *testing.T) {
	s := NewHeadingScorer()
	for _, txt := range []string{"Page 3", "www.example.com", "Figure 2: trends", "42"} {
		block := headingBlock(txt, 18, true, 100, 118)
		if score := s.Score(block, testFonts, nil, nil); score != 0 {
			t.Errorf("Score(%q) = %v, want 0", txt, score)
		}
	}
}

func TestScoreContributions(t *testing.T) {
	s := NewHeadingScorer()

	tests := []struct {
		name     string
		text     string
		size     float64
		bold     bool
		expected float64
	}{
		// tier 0 (below H4) + pattern 50 + keyword 20 + length 50 + caps 25
		{"all caps keyword", "DISCUSSION", 10, false, 145},
		// tier 30 (H3) + pattern 50 + keyword 20 + length 50 + title case 20
		{"title case keyword", "Results", 12, false, 170},
		// tier 0 + length 35 only
		{"plain body sentence", "the committee reviewed all pending applications before lunch", 10, false, 35},
		// pattern 50 + keyword 20 + length 50 (CJK, no cased runes, no tier)
		{"japanese chapter marker", "第1章 概要", 10, false, 120},
		// tier 40 (H1) + bold 45 + pattern 50 + length 50 + title 20 + prefix 25
		{"lettered heading", "A. Strategic Review", 16, true, 230},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := headingBlock(tt.text, tt.size, tt.bold, 100, 100+tt.size)
			if got := s.Score(block, testFonts, nil, nil); got != tt.expected {
				t.Errorf("Score(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestScoreSpatialIsolation(t *testing.T) {
	s := NewHeadingScorer()
	block := headingBlock("Quarterly Outlook", 12, false, 100, 112)
	tight := headingBlock("text", 10, false, 88, 99.5)
	tightAfter := headingBlock("text", 10, false, 112.5, 124)
	loose := headingBlock("text", 10, false, 60, 80)
	looseAfter := headingBlock("text", 10, false, 140, 160)

	crowded := s.Score(block, testFonts, &tight, &tightAfter)
	isolated := s.Score(block, testFonts, &loose, &looseAfter)
	if isolated-crowded != 30 {
		t.Errorf("isolation bonus = %v, want 30", isolated-crowded)
	}

	// Missing either neighbor forfeits the bonus.
	edge := s.Score(block, testFonts, nil, &looseAfter)
	if edge != crowded {
		t.Errorf("score without both neighbors = %v, want %v", edge, crowded)
	}
}

func TestClassify(t *testing.T) {
	s := NewHeadingScorer()

	tests := []struct {
		name     string
		score    float64
		fontSize float64
		expected model.HeadingLevel
	}{
		{"below minimum", 39.9, 20, model.LevelNone},
		{"minimum score small font", 40, 9, model.LevelH4},
		{"h3 by score", 55, 9, model.LevelH3},
		{"h2 by score", 70, 9, model.LevelH2},
		{"h1 by score", 85, 9, model.LevelH1},
		{"h1 by font", 45, 16, model.LevelH1},
		{"h2 by font", 45, 14.5, model.LevelH2},
		{"h3 by font", 45, 12, model.LevelH3},
		{"just under h3 score", 54.9, 9, model.LevelH4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Classify(tt.score, tt.fontSize, testFonts); got != tt.expected {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.score, tt.fontSize, got, tt.expected)
			}
		})
	}
}

func TestIsAllUpper(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"ABSTRACT", true},
		{"SECTION 12", true},
		{"Abstract", false},
		{"abstract", false},
		{"123", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isAllUpper(tt.input); got != tt.expected {
			t.Errorf("isAllUpper(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Annual Report", true},
		{"Annual Report 2024", true},
		{"1. Introduction", true},
		{"ANNUAL", false},
		{"annual report", false},
		{"Annual report", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isTitleCase(tt.input); got != tt.expected {
			t.Errorf("isTitleCase(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
