// Package docxtext extracts a plain-text paragraph outline from a DOCX
// file. It exists to verify generated documents: the inspect command and
// the end-to-end tests both read documents back through it.
package docxtext

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// Paragraph is one block-level paragraph of a document.
type Paragraph struct {
	Style string // paragraph style ID ("Title", "Heading1", ...), empty if none
	Text  string // text content; multiple text nodes in one run join with \n
}

// Outline is the ordered paragraph content of a document.
type Outline struct {
	Paragraphs []Paragraph
}

// Headings returns the text of all paragraphs styled as level-1 headings,
// in document order.
func (o *Outline) Headings() []string {
	var headings []string
	for _, p := range o.Paragraphs {
		if strings.EqualFold(p.Style, "Heading1") {
			headings = append(headings, p.Text)
		}
	}
	return headings
}

// Extract reads the DOCX file at path and returns its paragraph outline.
func Extract(path string) (*Outline, error) {
	f, err := os.Open(path) // #nosec G304 -- caller-provided document path
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return ExtractReader(f, info.Size())
}

// ExtractReader parses DOCX content from a ReaderAt and returns its
// paragraph outline.
func ExtractReader(r io.ReaderAt, size int64) (*Outline, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	outline := &Outline{}
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		outline.Paragraphs = append(outline.Paragraphs, Paragraph{
			Style: paragraphStyle(para),
			Text:  paragraphText(para),
		})
	}

	return outline, nil
}

// paragraphStyle returns the paragraph's style ID, if any.
func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

// paragraphText joins a paragraph's text content. Separate text nodes
// within one run are line-break separated in the source document, so they
// join with \n; this recovers code-block line structure.
func paragraphText(para *docx.Paragraph) string {
	var parts []string
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				parts = append(parts, t.Text)
			}
		}
	}
	return strings.Join(parts, "\n")
}
