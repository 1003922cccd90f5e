// Package extract produces best-effort plain-text renderings of recipe
// documents, one extractor per supported format.
package extract

import (
	"github.com/jimg-beep/recipes/pkg/types"
)

// Extractor turns one source document into plain text. Implementations
// report failure through the error return and never let a parser panic
// cross the boundary; callers downgrade errors to empty content.
type Extractor interface {
	// Extract reads the file at path and returns its text content.
	Extract(path string) (string, error)
}

// ForType returns the extractor for a document type. The type set is
// closed, so every discovered file has an extractor; unrecognized values
// fall back to the plain-text reader.
func ForType(t types.FileType) Extractor {
	switch t {
	case types.TypePDF:
		return pdfExtractor{}
	case types.TypeHTML:
		return htmlExtractor{}
	default:
		return textExtractor{}
	}
}
