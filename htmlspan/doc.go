// Package htmlspan adapts HTML documents into the span stream the analysis
// engine consumes. Element tags map to synthetic font sizes and styles
// (h1 is large and bold, p is body-sized), so the same heuristics that
// structure rendered PDFs apply to markup input.
package htmlspan
