package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var boilerplateLine = regexp.MustCompile(`(?i)^(Page\s+\d+|Header|Footer|Copyright.*)$`)

// Normalizer cleans raw span text: it collapses whitespace runs, strips
// characters outside a safe printable set, collapses repeated-character
// noise, and suppresses running header/footer lines. Clean is a pure
// function; a single Normalizer is safe for concurrent use.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Clean normalizes a raw fragment. Empty input yields empty output.
func (n *Normalizer) Clean(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)

	lines := strings.Split(s, "\n")
	cleaned := make([]string, 0, len(lines))
	prev := ""
	repeats := 0
	for _, line := range lines {
		line = collapseWhitespace(strings.TrimSpace(line))
		line = stripUnsafe(line)
		line = collapseRepeats(line)
		if line == "" {
			continue
		}
		// Exact repeats of the previous line beyond one occurrence are
		// running headers/footers leaking into the text stream.
		if line == prev {
			repeats++
			if repeats > 1 {
				continue
			}
		} else {
			repeats = 1
			prev = line
		}
		if boilerplateLine.MatchString(line) {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, " "))
}

// collapseWhitespace reduces every whitespace run to a single space.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// stripUnsafe removes characters outside letters, digits, whitespace and a
// small punctuation set.
func stripUnsafe(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		switch r {
		case '-', '.', ',', ':', ';', '!', '?', '(', ')', '[', ']', '"', '\'', '/':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseRepeats reduces any run of 4 or more identical runes to a single
// occurrence, defending against OCR and rendering artifacts. RE2 has no
// backreferences, so this is a rune scan rather than a regexp.
func collapseRepeats(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		count := j - i
		if count >= 4 {
			count = 1
		}
		for k := 0; k < count; k++ {
			b.WriteRune(runes[i])
		}
		i = j
	}
	return b.String()
}
