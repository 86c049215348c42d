// Package layout implements the structural analysis pipeline: merging
// renderer spans into blocks, deriving the document's font-size distribution,
// scoring and classifying heading candidates, assembling sections, and
// selecting the document title.
package layout
