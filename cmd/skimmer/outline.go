package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/skimmer"
	"github.com/tsawler/skimmer/htmlspan"
	"github.com/tsawler/skimmer/model"
	"github.com/tsawler/skimmer/pdfspan"
)

func outlineCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "outline <input-dir>",
		Short: "Extract a title and heading outline from every document in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "output", "directory for the per-document JSON results")
	return cmd
}

func runOutline(inputDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("reading input directory: %w", err)
	}

	engine := skimmer.New()
	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !supportedDocument(entry.Name()) {
			continue
		}
		path := filepath.Join(inputDir, entry.Name())

		doc, err := loadDocument(path)
		if err != nil {
			slog.Error("skipping document", "path", path, "error", err)
			continue
		}

		result := engine.Outline(doc)
		if result.Title == "" {
			result.Title = stem(entry.Name())
		}

		outPath := filepath.Join(outDir, stem(entry.Name())+".json")
		if err := writeJSON(outPath, result); err != nil {
			slog.Error("writing result", "path", outPath, "error", err)
			continue
		}
		slog.Info("processed", "document", entry.Name(), "title", result.Title, "headings", len(result.Outline))
		processed++
	}

	if processed == 0 {
		slog.Warn("no documents found", "dir", inputDir)
	}
	return nil
}

func supportedDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".html", ".htm":
		return true
	}
	return false
}

func loadDocument(path string) (model.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return htmlspan.Load(path)
	default:
		return pdfspan.Load(path)
	}
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
