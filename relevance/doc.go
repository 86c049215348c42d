// Package relevance scores text fragments against a reader persona and a
// job-to-be-done, combining stop-worded token overlap with weighted keyword
// tables per persona and job category.
package relevance
