// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"strings"
)

// textExtractor reads plain text and Markdown files.
type textExtractor struct{}

// Extract returns the file's content with invalid UTF-8 sequences dropped.
// No other normalization happens here; the indexed content matches the file.
func (textExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file %s: %w", path, err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
