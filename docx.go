package md2docx

import (
	"bytes"
	"fmt"
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
)

// Paragraph styles referenced in the generated document.
const (
	styleTitle    = "Title"
	styleHeading1 = "Heading1"
	styleList     = "ListParagraph"
)

// Code block formatting.
const (
	codeFontFamily = "Courier New"
	codeFontSize   = 9 * measurement.Point
)

// subBulletIndentTwips is the fixed left indent of sub-bullet paragraphs,
// 0.5 inch expressed in twentieths of a point.
const subBulletIndentTwips = 720

// deckDocument wraps the in-progress DOCX. Owned by a single Build call;
// append-only until bytes() serializes it.
type deckDocument struct {
	doc     *document.Document
	numbers []document.NumberingDefinition
}

// newDeckDocument creates an empty document with the given margins applied
// to all four page sides.
func newDeckDocument(page *PageSettings) *deckDocument {
	if page == nil {
		page = DefaultPageSettings()
	}
	doc := document.New()

	margin := measurement.Distance(page.Margin) * measurement.Inch
	doc.BodySection().SetPageMargins(
		margin, margin, margin, margin,
		margin, margin, 0)

	return &deckDocument{
		doc:     doc,
		numbers: doc.Numbering.Definitions(),
	}
}

// addTitle appends the centered deck title and subtitle. Unconditional,
// independent of slide content.
func (d *deckDocument) addTitle(title, subtitle string) {
	tp := d.doc.AddParagraph()
	tp.SetStyle(styleTitle)
	tp.Properties().SetAlignment(wml.ST_JcCenter)
	tp.AddRun().AddText(title)

	sp := d.doc.AddParagraph()
	sp.Properties().SetAlignment(wml.ST_JcCenter)
	sp.AddRun().AddText(subtitle)
}

// addSection appends one slide's section: the centered level-1 heading on
// a fresh page, then the parsed elements in source order.
func (d *deckDocument) addSection(sec Section) {
	hp := d.doc.AddParagraph()
	hp.SetStyle(styleHeading1)
	hp.Properties().SetAlignment(wml.ST_JcCenter)
	hp.Properties().SetPageBreakBefore(true)
	hp.AddRun().AddText(sec.Heading)

	for _, el := range sec.Elements {
		switch el.Kind {
		case KindBullet:
			p := d.addBullet()
			r := p.AddRun()
			r.Properties().SetBold(true)
			r.AddText(el.Text)
		case KindSubBullet:
			p := d.addBullet()
			indentLeft(p, subBulletIndentTwips)
			p.AddRun().AddText(el.Text)
		case KindCodeBlock:
			d.addCodeBlock(el.Text)
		}
	}
}

// addBullet appends a bulleted-list paragraph using the document's default
// bullet numbering definition.
func (d *deckDocument) addBullet() document.Paragraph {
	p := d.doc.AddParagraph()
	p.SetStyle(styleList)
	if len(d.numbers) > 0 {
		p.SetNumberingDefinition(d.numbers[0])
		p.SetNumberingLevel(0)
	}
	return p
}

// addCodeBlock appends the accumulated code text as a single paragraph
// holding one monospace run. Lines become separate text nodes joined by
// line breaks, preserving the newline-joined structure.
func (d *deckDocument) addCodeBlock(text string) {
	p := d.doc.AddParagraph()
	r := p.AddRun()
	r.Properties().SetFontFamily(codeFontFamily)
	r.Properties().SetSize(codeFontSize)

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.AddBreak()
		}
		r.AddText(line)
	}
}

// bytes serializes the document. Nothing touches the filesystem here, so a
// failed build never leaves a partial output file behind.
func (d *deckDocument) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderDocument, err)
	}
	return buf.Bytes(), nil
}

// indentLeft sets a fixed left indent, in twips, on a paragraph.
func indentLeft(p document.Paragraph, twips int64) {
	ind := wml.NewCT_Ind()
	ind.LeftAttr = &wml.ST_SignedTwipsMeasure{Int64: gooxml.Int64(twips)}
	p.Properties().X().Ind = ind
}
