// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview derives bounded display snippets from extracted text.
package preview

import "strings"

// DefaultMaxLength is the preview bound used when no length is configured.
const DefaultMaxLength = 200

// ellipsis marks a truncated preview. It does not count against the bound,
// so a truncated preview is at most max+3 characters.
const ellipsis = "..."

// Make collapses every whitespace run in text to a single space, trims the
// result, and bounds it to max characters. The count is in runes, not
// bytes, so multibyte text is not cut short. Truncation backs up to the
// last space inside the bound so no word is split; when the bounded slice
// has no space at all it is kept whole. Values of max below 1 fall back to
// DefaultMaxLength.
//
// Make is idempotent on clean text that fits the bound: feeding its output
// back in returns the same string.
func Make(text string, max int) string {
	if max <= 0 {
		max = DefaultMaxLength
	}

	cleaned := strings.Join(strings.Fields(text), " ")
	runes := []rune(cleaned)
	if len(runes) <= max {
		return cleaned
	}

	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i >= 0 {
		cut = cut[:i]
	}
	return cut + ellipsis
}
