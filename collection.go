package skimmer

import (
	"sort"
	"time"

	"github.com/tsawler/skimmer/layout"
	"github.com/tsawler/skimmer/model"
)

// maxRefinedRunes caps the body text carried into subsection analysis.
const maxRefinedRunes = 1000

// SectionRanking is one ranked heading in a collection result. The raw
// relevance score is dropped; only the dense importance rank remains.
type SectionRanking struct {
	Document       string `json:"document"`
	PageNumber     int    `json:"page_number"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
}

// SubsectionRanking is one relevance-scored body fragment in a collection
// result, kept as a relevance-sorted list without rank assignment.
type SubsectionRanking struct {
	Document       string  `json:"document"`
	RefinedText    string  `json:"refined_text"`
	PageNumber     int     `json:"page_number"`
	RelevanceScore float64 `json:"relevance_score"`
}

// CollectionMetadata echoes the request that produced a collection result.
type CollectionMetadata struct {
	InputDocuments []string `json:"input_documents"`
	Persona        string   `json:"persona"`
	JobToBeDone    string   `json:"job_to_be_done"`
	Timestamp      string   `json:"timestamp"`
}

// CollectionResult is the multi-document, persona-mode output shape.
type CollectionResult struct {
	Metadata           CollectionMetadata  `json:"metadata"`
	ExtractedSections  []SectionRanking    `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionRanking `json:"subsection_analysis"`
}

// RankCollection runs the single-document pipeline over a batch sharing one
// persona and job. The first successfully analyzed document's font analysis
// is reused for the rest of the batch so heading tiers stay comparable. Every
// heading is scored against the persona/job and densely ranked; every section
// body is scored and returned relevance-sorted.
func (e *Engine) RankCollection(docs []model.Document, persona, job string) CollectionResult {
	result := CollectionResult{
		Metadata: CollectionMetadata{
			InputDocuments: make([]string, 0, len(docs)),
			Persona:        persona,
			JobToBeDone:    job,
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
		},
		ExtractedSections:  []SectionRanking{},
		SubsectionAnalysis: []SubsectionRanking{},
	}

	type scoredSection struct {
		ranking SectionRanking
		score   float64
	}
	var sections []scoredSection

	var shared *layout.FontAnalysis
	for _, doc := range docs {
		result.Metadata.InputDocuments = append(result.Metadata.InputDocuments, doc.Name)

		a := e.analyze(doc, shared)
		if shared == nil && a.HasFonts {
			fonts := a.Fonts
			shared = &fonts
		}

		for _, entry := range a.Outline {
			sections = append(sections, scoredSection{
				ranking: SectionRanking{
					Document:     doc.Name,
					PageNumber:   entry.Page,
					SectionTitle: entry.Text,
				},
				score: e.relevance.Score(entry.Text, persona, job),
			})
		}

		for _, s := range a.Sections {
			if len(s.Body) == 0 {
				continue
			}
			body := s.BodyText()
			refined := body
			if runes := []rune(body); len(runes) > maxRefinedRunes {
				refined = string(runes[:maxRefinedRunes]) + "..."
			}
			result.SubsectionAnalysis = append(result.SubsectionAnalysis, SubsectionRanking{
				Document:       doc.Name,
				RefinedText:    refined,
				PageNumber:     s.Page + 1,
				RelevanceScore: e.relevance.Score(body, persona, job),
			})
		}
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].score > sections[j].score
	})
	rank := 0
	prevScore := 0.0
	for i, s := range sections {
		if i == 0 || s.score != prevScore {
			rank++
			prevScore = s.score
		}
		s.ranking.ImportanceRank = rank
		result.ExtractedSections = append(result.ExtractedSections, s.ranking)
	}

	sort.SliceStable(result.SubsectionAnalysis, func(i, j int) bool {
		return result.SubsectionAnalysis[i].RelevanceScore > result.SubsectionAnalysis[j].RelevanceScore
	})

	return result
}
