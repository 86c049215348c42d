package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/skimmer"
	"github.com/tsawler/skimmer/model"
)

func rankCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "rank <input-dir>",
		Short: "Rank sections across a document collection for a persona and task",
		Long: `Rank reads <input-dir>/input.json, which names the documents in the
directory along with a persona and a job-to-be-done, runs the outline pipeline
over the collection, and writes the ranked sections to the output file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(args[0], outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "output/output.json", "path of the ranked output file")
	return cmd
}

// rankInput mirrors the collection request format. Documents, persona and job
// accept both the bare-string and the object form.
type rankInput struct {
	Documents   []json.RawMessage `json:"documents"`
	Persona     json.RawMessage   `json:"persona"`
	JobToBeDone json.RawMessage   `json:"job_to_be_done"`
}

func runRank(inputDir, outPath string) error {
	data, err := os.ReadFile(filepath.Join(inputDir, "input.json"))
	if err != nil {
		return fmt.Errorf("reading input.json: %w", err)
	}

	var input rankInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parsing input.json: %w", err)
	}

	persona := stringOrField(input.Persona, "role")
	job := stringOrField(input.JobToBeDone, "task")

	requested := []string{}
	var docs []model.Document
	for _, raw := range input.Documents {
		name := stringOrField(raw, "filename")
		if name == "" {
			slog.Warn("skipping invalid document entry")
			continue
		}
		requested = append(requested, name)
		path := filepath.Join(inputDir, name)
		doc, err := loadDocument(path)
		if err != nil {
			slog.Error("skipping document", "path", path, "error", err)
			continue
		}
		docs = append(docs, doc)
	}

	slog.Info("ranking collection", "documents", len(docs), "persona", persona, "job", job)
	result := skimmer.RankCollection(docs, persona, job)
	// The metadata echoes the request: every named document appears, even
	// ones that failed to load.
	result.Metadata.InputDocuments = requested

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := writeJSON(outPath, result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	slog.Info("wrote ranking",
		"path", outPath,
		"sections", len(result.ExtractedSections),
		"subsections", len(result.SubsectionAnalysis))
	return nil
}

// stringOrField decodes either a JSON string or an object with the given
// string field, returning "" on anything else.
func stringOrField(raw json.RawMessage, field string) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		if v, ok := obj[field].(string); ok {
			return v
		}
	}
	return ""
}
