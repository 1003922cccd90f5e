// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index runs the recipe indexing pipeline: discover source files,
// extract their text, derive previews, copy the originals into the output
// directory, and serialize the index.
package index

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jimg-beep/recipes/internal/extract"
	"github.com/jimg-beep/recipes/internal/preview"
	"github.com/jimg-beep/recipes/internal/scan"
	"github.com/jimg-beep/recipes/pkg/types"
)

const (
	// DefaultOutputFile is the index filename used when none is given.
	DefaultOutputFile = "recipes_index.json"

	// DefaultCopyDirName is the subdirectory that receives file copies.
	DefaultCopyDirName = "recipes"
)

// Summary holds the outcome of one indexing run.
type Summary struct {
	// Found is the number of recognized files discovered under the root.
	Found int

	// Indexed is the number of records written to the index.
	Indexed int

	// Skipped is the number of files dropped because their copy failed.
	Skipped int

	// IndexPath is the absolute path of the written index file.
	IndexPath string

	// IndexSize is the byte size of the written index file.
	IndexSize int64

	// TotalSize is the combined byte size of the indexed source files.
	TotalSize int64
}

// HasFailures reports whether any discovered file was dropped.
func (s Summary) HasFailures() bool {
	return s.Skipped > 0
}

// Run executes the pipeline described by cfg, writing per-file progress and
// warnings to w. Per-file trouble is contained: extraction failures index
// the file with empty content, copy failures skip the file. Only an
// unreadable recipes directory or an unwritable output aborts the run.
//
// Record ids restart at 1 on every run and stay contiguous even when files
// are skipped; the copy name prefix keeps the discovery position instead,
// so the two can diverge after a skip.
func Run(cfg types.IndexConfig, w io.Writer) (Summary, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.CopyDirName == "" {
		cfg.CopyDirName = DefaultCopyDirName
	}
	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = preview.DefaultMaxLength
	}

	files, err := scan.Scan(cfg.RecipesDir)
	if err != nil {
		return Summary{}, err
	}

	copyDir := filepath.Join(cfg.OutputDir, cfg.CopyDirName)
	if err := os.MkdirAll(copyDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating copy directory %s: %w", copyDir, err)
	}

	fmt.Fprintf(w, "Found %d recipe files\n", len(files))

	summary := Summary{Found: len(files)}
	recipes := make([]types.Recipe, 0, len(files))

	for i, f := range files {
		fmt.Fprintf(w, "Processing %d/%d: %s\n", i+1, len(files), f.Name)

		text, err := extract.ForType(f.Type).Extract(f.Path)
		if err != nil {
			fmt.Fprintf(w, "  warning: extracting %s: %v\n", f.Name, err)
			text = ""
		}
		if text == "" {
			fmt.Fprintf(w, "  warning: no text extracted from %s\n", f.Name)
		}

		destName := copyName(i+1, f.Name)
		if err := copyFile(f.Path, filepath.Join(copyDir, destName)); err != nil {
			fmt.Fprintf(w, "  warning: copying %s: %v\n", f.Name, err)
			summary.Skipped++
			continue
		}

		recipes = append(recipes, types.Recipe{
			ID:       len(recipes) + 1,
			Filename: f.Name,
			FilePath: cfg.CopyDirName + "/" + destName,
			Type:     f.Type,
			Content:  text,
			Preview:  preview.Make(text, cfg.PreviewLength),
			Size:     f.Size,
		})
		summary.TotalSize += f.Size
	}

	indexPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	if err := WriteIndex(indexPath, recipes); err != nil {
		return summary, err
	}
	summary.Indexed = len(recipes)

	summary.IndexPath = indexPath
	if abs, err := filepath.Abs(indexPath); err == nil {
		summary.IndexPath = abs
	}
	if info, err := os.Stat(indexPath); err == nil {
		summary.IndexSize = info.Size()
	}

	copyDirShown := copyDir
	if abs, err := filepath.Abs(copyDir); err == nil {
		copyDirShown = abs
	}

	fmt.Fprintf(w, "\nIndexed %d recipes\n", summary.Indexed)
	fmt.Fprintf(w, "Index saved to: %s\n", summary.IndexPath)
	fmt.Fprintf(w, "Recipe files copied to: %s\n", copyDirShown)
	fmt.Fprintf(w, "Index size: %.1f KB\n", float64(summary.IndexSize)/1024)
	fmt.Fprintf(w, "Total recipe files size: %.1f MB\n", float64(summary.TotalSize)/(1024*1024))

	return summary, nil
}
