package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// excludePatterns is the fixed library of fragment shapes that can never be
// headings or title candidates: addresses, URLs, emails, page numbers,
// captions, boilerplate, bullets and rule lines. All match case-insensitively
// and are anchored at the start of the fragment.
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+\s*[A-Z\s]+$`),              // street numbers, "3735 PARKWAY"
	regexp.MustCompile(`(?i)^[A-Z]+:.*$`),                   // "ADDRESS:", "RSVP:"
	regexp.MustCompile(`(?i)^(www\.|http)`),                 // URLs
	regexp.MustCompile(`(?i)^\w+@\w+\.\w+`),                 // email addresses
	regexp.MustCompile(`^\d+$`),                             // bare numbers
	regexp.MustCompile(`^[-=]+$|^[-=]\s*[-=]+$`),            // dashed/ruled lines
	regexp.MustCompile(`(?i)^\w+\s+\w+,\s+[A-Z]{2}\s+\d+$`), // "Springfield IL"-style addresses
	regexp.MustCompile(`^\(.*\)$`),                          // fully parenthesized text
	regexp.MustCompile(`(?i)^Page\s+\d+`),                   // page numbers
	regexp.MustCompile(`(?i)^Figure\s+\d+`),                 // figure captions
	regexp.MustCompile(`(?i)^Table\s+\d+`),                  // table captions
	regexp.MustCompile(`^\d{4}-\d{4}$`),                     // year ranges
	regexp.MustCompile(`(?i)^Copyright`),                    // copyright notices
	regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\.\d+\.\d+\.\d+\.\d+$`),
	regexp.MustCompile(`^[0-9]{8,}$`),                       // long number strings
	regexp.MustCompile(`^\s*[-•]\s*`),                       // bullet list items
	regexp.MustCompile(`(?i)^(Header|Footer)\s*\d*$`),
}

var digitRun = regexp.MustCompile(`\d+`)

// ExclusionFilter rejects fragments that cannot be headings. It holds only
// immutable pattern tables and is safe for concurrent use.
type ExclusionFilter struct {
	patterns []*regexp.Regexp

	// MaxWords is the word count above which a fragment is body text,
	// not a heading candidate.
	MaxWords int

	// MaxDigitRatio is the maximum ratio of digit tokens to words.
	MaxDigitRatio float64
}

// NewExclusionFilter creates a filter with the standard pattern library.
func NewExclusionFilter() *ExclusionFilter {
	return &ExclusionFilter{
		patterns:      excludePatterns,
		MaxWords:      30,
		MaxDigitRatio: 0.6,
	}
}

// Excluded reports whether the fragment must be rejected before heading
// detection. Excluded text can never become a heading or title candidate.
func (f *ExclusionFilter) Excluded(s string) bool {
	trimmed := strings.TrimSpace(s)
	if utf8.RuneCountInString(trimmed) < 2 {
		return true
	}
	for _, p := range f.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	if isRepeatedRune(trimmed) {
		return true
	}
	words := len(strings.Fields(s))
	if words > 0 {
		digits := len(digitRun.FindAllString(s, -1))
		if float64(digits)/float64(words) > f.MaxDigitRatio {
			return true
		}
	}
	return words > f.MaxWords
}

// isRepeatedRune reports whether s is a single rune repeated 4+ times
// (the RE2-incompatible `^(.)\1{3,}$` check).
func isRepeatedRune(s string) bool {
	runes := []rune(s)
	if len(runes) < 4 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}
