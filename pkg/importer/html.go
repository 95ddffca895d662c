// Package importer seeds drafts from saved web pages by stripping
// markup down to plain text.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists the elements whose text becomes paragraphs of
// the imported draft, in document order.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, blockquote, pre"

// ExtractText reads an HTML document and returns its title and body as
// plain text. Scripts, styles, and navigation chrome are dropped; each
// surviving block element becomes one paragraph.
func ExtractText(r io.Reader) (title, body string, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find("script, style, nav, header, footer, noscript").Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Skip containers whose text is already captured by a nested
		// block element (e.g. an li holding a p).
		if sel.ChildrenFiltered(blockSelector).Length() > 0 {
			return
		}
		text := normalizeSpace(sel.Text())
		if text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return title, "", fmt.Errorf("no textual content found")
	}

	return title, strings.Join(blocks, "\n\n"), nil
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
