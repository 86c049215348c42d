// Package pdfspan adapts a PDF renderer into the span stream the analysis
// engine consumes. It groups the renderer's per-glyph text runs into styled
// spans with font metadata and top-down page coordinates. The engine itself
// never touches PDF bytes; this package is the external-collaborator
// boundary.
package pdfspan
