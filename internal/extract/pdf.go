// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfExtractor extracts text from PDF documents with pdfcpu.
type pdfExtractor struct{}

// textLiteral matches parenthesized string literals in a content stream,
// allowing backslash escapes inside the literal.
var textLiteral = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// Extract parses the PDF at path and returns the text of all pages joined
// by newlines. Pages without text are omitted, so a structurally valid PDF
// with no extractable text returns "" and a nil error. Parse failures
// surface as errors.
func (pdfExtractor) Extract(path string) (text string, err error) {
	// pdfcpu panics on some malformed cross-reference tables; the failure
	// must stay inside the extractor boundary.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parsing PDF %s: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("parsing PDF %s: %w", path, err)
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		if pageText := extractPage(ctx, pageNr); pageText != "" {
			pages = append(pages, pageText)
		}
	}
	return strings.Join(pages, "\n"), nil
}

// extractPage returns the text of one page, or "" when the page has no
// content stream or it cannot be read.
func extractPage(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	stream, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return streamText(stream)
}

// streamText decodes the text-showing operators of a page content stream.
// It understands the Tj, TJ and ' show operators plus the Td, TD and T*
// positioning operators; everything else on the page is layout noise.
func streamText(stream []byte) string {
	var sb strings.Builder
	for _, line := range bytes.Split(stream, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			writeLiterals(&sb, line, " ")
		case bytes.HasSuffix(line, []byte("'")):
			writeLiterals(&sb, line, "\n")
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}
	return tidyPageText(sb.String())
}

// writeLiterals decodes every string literal on the line and appends each,
// preceded by sep when the builder already has content.
func writeLiterals(sb *strings.Builder, line []byte, sep string) {
	for _, m := range textLiteral.FindAllSubmatch(line, -1) {
		decoded := decodeLiteral(m[1])
		if decoded == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(decoded)
	}
}

// decodeLiteral resolves the escape sequences of a PDF string literal:
// \n \r \t, escaped delimiters, and one- to three-digit octal codes.
func decodeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; {
		case c == 'n':
			sb.WriteByte('\n')
		case c == 'r':
			sb.WriteByte('\r')
		case c == 't':
			sb.WriteByte('\t')
		case c == '(' || c == ')' || c == '\\':
			sb.WriteByte(c)
		case c >= '0' && c <= '7':
			digits := 1
			for digits < 3 && i+digits < len(raw) && raw[i+digits] >= '0' && raw[i+digits] <= '7' {
				digits++
			}
			code, err := strconv.ParseUint(string(raw[i:i+digits]), 8, 16)
			if err == nil && code < 256 {
				sb.WriteByte(byte(code))
			}
			i += digits - 1
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// tidyPageText collapses whitespace runs to single spaces and drops
// non-printable bytes left over from operator decoding.
func tidyPageText(s string) string {
	var sb strings.Builder
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		if !unicode.IsPrint(r) {
			continue
		}
		sb.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(sb.String())
}
