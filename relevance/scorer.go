package relevance

import (
	"strings"
	"unicode"
)

// maxTextRunes caps how much of a fragment is considered when scoring.
const maxTextRunes = 2000

// Scorer scores arbitrary text for relevance to a persona and a
// job-to-be-done. It holds only immutable keyword tables set at
// construction, so a single Scorer is safe for concurrent use.
type Scorer struct {
	personas []personaCategory
	jobs     []jobCategory
}

// NewScorer creates a scorer with the standard persona and job tables.
func NewScorer() *Scorer {
	return &Scorer{
		personas: defaultPersonaCategories(),
		jobs:     defaultJobCategories(),
	}
}

// Score computes a relevance score for text given a persona string and a
// job-to-be-done string. The base is weighted token overlap (15 per shared
// persona token, 25 per shared job token); persona- and job-category keyword
// bonuses are added on top. The result is never negative, and empty input
// always yields 0.
func (s *Scorer) Score(text, persona, job string) float64 {
	if text == "" {
		return 0
	}
	text = truncateRunes(text, maxTextRunes)

	textTokens := tokenize(text)
	score := 15.0*float64(overlap(textTokens, tokenize(persona))) +
		25.0*float64(overlap(textTokens, tokenize(job)))

	textLower := strings.ToLower(text)
	score += s.personaBonus(textLower, strings.ToLower(persona))
	score += s.jobBonus(textLower, strings.ToLower(job))

	if score < 0 {
		return 0
	}
	return score
}

// personaBonus adds weighted hits from the first persona category whose
// trigger appears in the persona string. Keywords match as case-insensitive
// substrings of the text; every hit counts.
func (s *Scorer) personaBonus(textLower, personaLower string) float64 {
	for _, cat := range s.personas {
		if !containsAny(personaLower, cat.triggers) {
			continue
		}
		bonus := 0.0
		for _, kw := range cat.high {
			if strings.Contains(textLower, kw) {
				bonus += cat.highWeight
			}
		}
		for _, kw := range cat.medium {
			if strings.Contains(textLower, kw) {
				bonus += cat.mediumWeight
			}
		}
		for _, kw := range cat.low {
			if strings.Contains(textLower, kw) {
				bonus += cat.lowWeight
			}
		}
		return bonus
	}
	return 0
}

// jobBonus adds the flat per-keyword bonus from the first job category whose
// trigger appears in the job string.
func (s *Scorer) jobBonus(textLower, jobLower string) float64 {
	for _, cat := range s.jobs {
		if !containsAny(jobLower, cat.triggers) {
			continue
		}
		bonus := 0.0
		for _, kw := range cat.keywords {
			if strings.Contains(textLower, kw) {
				bonus += cat.weight
			}
		}
		return bonus
	}
	return 0
}

// tokenize splits text into the set of lowercase alphanumeric words,
// discarding stop words.
func tokenize(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens[f] = struct{}{}
	}
	return tokens
}

// overlap counts tokens present in both sets.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
