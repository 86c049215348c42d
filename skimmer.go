// Package skimmer turns a page-level stream of styled text spans into a
// structured document outline (a title plus an H1-H4 heading hierarchy) and,
// given a reader persona and a task description, ranks the discovered
// sections by relevance to that persona and task.
//
// Basic usage:
//
//	doc, err := pdfspan.Load("report.pdf")
//	if err != nil {
//	    // handle error
//	}
//	result := skimmer.New().Outline(doc)
//	fmt.Println(result.Title)
//
// Ranking a collection against a persona:
//
//	out := skimmer.New().RankCollection(docs, "PhD Researcher",
//	    "conduct a literature review")
//
// The engine holds no per-call mutable state: a single Engine is safely
// reentrant across concurrent calls. Processing within one collection call is
// sequential and order-sensitive, because the first document's font analysis
// seeds the rest of the batch.
package skimmer

import "github.com/tsawler/skimmer/model"

// Outline runs the single-document pipeline with a default engine.
func Outline(doc model.Document) Result {
	return New().Outline(doc)
}

// RankCollection ranks a document batch against a persona and job with a
// default engine.
func RankCollection(docs []model.Document, persona, job string) CollectionResult {
	return New().RankCollection(docs, persona, job)
}
