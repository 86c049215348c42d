// Package text provides the text-level preprocessing used by the analysis
// pipeline: normalization of raw renderer output, exclusion of fragments
// that can never be headings, and coarse script-based language detection.
package text
