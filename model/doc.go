// Package model defines the shared data types used throughout skimmer:
// geometric primitives, renderer text spans, merged blocks, and the
// section/outline types produced by document analysis.
package model
