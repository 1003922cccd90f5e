// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlExtractor extracts the visible text of HTML documents.
type htmlExtractor struct{}

// Extract parses the file at path as HTML and returns its text with script
// and style subtrees removed. Text nodes are trimmed and joined with single
// spaces; entities arrive already decoded by the parser. Invalid UTF-8
// sequences are dropped before parsing.
func (htmlExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading HTML %s: %w", path, err)
	}

	doc, err := html.Parse(strings.NewReader(strings.ToValidUTF8(string(data), "")))
	if err != nil {
		return "", fmt.Errorf("parsing HTML %s: %w", path, err)
	}
	return visibleText(doc), nil
}

// visibleText walks the parsed tree and collects the text nodes that a
// reader would see on the page.
func visibleText(root *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style:
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return sb.String()
}
