// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
)

// FileType classifies a recipe source document. The set is closed: every
// indexed file is exactly one of pdf, html, or text.
type FileType string

const (
	TypePDF  FileType = "pdf"
	TypeHTML FileType = "html"
	TypeText FileType = "text"
)

// FileTypeForPath maps a file's extension to its FileType. Matching is
// case-insensitive; .txt and .md both map to text. The second return value
// is false for extensions outside the supported set.
func FileTypeForPath(path string) (FileType, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return TypePDF, true
	case ".html", ".htm":
		return TypeHTML, true
	case ".txt", ".md":
		return TypeText, true
	default:
		return "", false
	}
}

// Recipe is one indexed recipe document: original-file metadata plus the
// extracted text and its preview.
type Recipe struct {
	// ID is the record's 1-based position in the index. IDs are contiguous
	// within one run's output.
	ID int `json:"id" yaml:"id"`

	// Filename is the base name of the source file, unmodified.
	Filename string `json:"filename" yaml:"filename"`

	// FilePath locates the materialized copy relative to the output
	// directory, always with forward slashes (e.g. "recipes/001_pasta.pdf").
	FilePath string `json:"file_path" yaml:"file_path"`

	// Type identifies the source format.
	Type FileType `json:"type" yaml:"type"`

	// Content is the full extracted text. Empty when extraction failed or
	// found nothing; the record is kept either way.
	Content string `json:"content" yaml:"content"`

	// Preview is a whitespace-collapsed snippet of Content bounded by the
	// configured preview length, plus an ellipsis when truncated.
	Preview string `json:"preview" yaml:"preview"`

	// Size is the byte length of the original source file.
	Size int64 `json:"size" yaml:"size"`
}
