package model

import "fmt"

// HeadingLevel represents the hierarchical tier of a heading (H1-H4).
// The zero value means the block is not a heading.
type HeadingLevel int

const (
	LevelNone HeadingLevel = iota
	LevelH1                // Main title/chapter
	LevelH2                // Major section
	LevelH3                // Subsection
	LevelH4                // Minor heading
)

// String returns the canonical level name ("H1".."H4"), or "" for LevelNone.
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	default:
		return ""
	}
}

// IsHeading reports whether the level denotes an actual heading tier.
func (l HeadingLevel) IsHeading() bool {
	return l >= LevelH1 && l <= LevelH4
}

// MarshalJSON encodes the level as its canonical string form.
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", l.String())), nil
}

// Section pairs a classified heading with the body text that follows it,
// up to the next heading.
type Section struct {
	// Heading is the heading block's text.
	Heading string

	// Level is the classified heading tier.
	Level HeadingLevel

	// Page is the 0-indexed page the heading appears on.
	Page int

	// Body holds the non-empty body fragments in document order.
	Body []string

	// Score is the heading score that admitted this section.
	Score float64
}

// BodyText returns the section body joined into a single string.
func (s Section) BodyText() string {
	text := ""
	for i, frag := range s.Body {
		if i > 0 {
			text += " "
		}
		text += frag
	}
	return text
}

// OutlineEntry is the externally visible projection of a section heading.
// Page is 1-indexed here, matching the output contract.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}
