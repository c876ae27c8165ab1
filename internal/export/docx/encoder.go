// Package docx encodes a resume as a WordprocessingML document. Layout is
// left to the word processor: paragraphs flow and no page breaks are set.
package docx

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	wdoc "github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
	"github.com/khrees2412/quickcv/internal/document"
	"github.com/khrees2412/quickcv/pkg/models"
)

const (
	// A4 in twentieths of a point, 20 mm margins
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
	marginTwips     = 1134
	contentTwips    = pageWidthTwips - 2*marginTwips

	// the bullet list defined by the default template's numbering part
	bulletNumID = 1

	coreProps = "docProps/core.xml"
)

// Encoder turns a resume into DOCX bytes
type Encoder struct {
	now func() time.Time
}

// NewEncoder creates an Encoder stamping documents with the current time
func NewEncoder() *Encoder {
	return &Encoder{now: time.Now}
}

// Ext is the file extension of the encoded document
func (e *Encoder) Ext() string { return ".docx" }

// Encode packages r as a .docx archive
func (e *Encoder) Encode(ctx context.Context, r models.Resume) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := document.Build(r)

	rd, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("open docx template: %w", err)
	}
	setPage(rd)

	if doc.Name != "" {
		if _, err := rd.AddHeading(doc.Name, 0); err != nil {
			return nil, err
		}
	}
	if len(doc.Contact) > 0 {
		rd.AddParagraph(strings.Join(doc.Contact, " | ")).Style("Subtitle")
	}

	for _, s := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := rd.AddHeading(s.Title, 1); err != nil {
			return nil, err
		}

		switch s.Kind {
		case document.Summary:
			multiline(rd.AddEmptyParagraph(), s.Text)
		case document.Skills:
			for _, sk := range s.Skills {
				p := rd.AddEmptyParagraph()
				p.AddText(sk.Label + ": ").Bold(true)
				p.AddText(sk.Items)
			}
		default:
			for _, entry := range s.Entries {
				addEntry(rd, entry)
			}
		}
	}

	rd.FileMap.Store(coreProps, coreXML(doc.Name, e.now().UTC()))

	var buf bytes.Buffer
	if err := rd.Write(&buf); err != nil {
		return nil, fmt.Errorf("write docx archive: %w", err)
	}
	return buf.Bytes(), nil
}

func setPage(rd *wdoc.RootDoc) {
	if rd.Document.Body == nil {
		rd.Document.Body = wdoc.NewBody(rd)
	}
	body := rd.Document.Body
	if body.SectPr == nil {
		body.SectPr = ctypes.NewSectionProper()
	}
	w, h := uint64(pageWidthTwips), uint64(pageHeightTwips)
	m, edge := marginTwips, 708
	body.SectPr.PageSize = &ctypes.PageSize{Width: &w, Height: &h}
	body.SectPr.PageMargin = &ctypes.PageMargin{Top: &m, Right: &m, Bottom: &m, Left: &m, Header: &edge, Footer: &edge}
}

func addEntry(rd *wdoc.RootDoc, e document.Entry) {
	if e.Title != "" || e.Dates != "" {
		p := rd.AddEmptyParagraph()
		props := paraProps(p)
		props.KeepNext = ctypes.OnOffFromBool(true)
		if e.Title != "" {
			p.AddText(e.Title).Bold(true)
		}
		if e.Dates != "" {
			props.Tabs.Tab = append(props.Tabs.Tab, ctypes.Tab{Val: stypes.CustTabStopRight, Position: contentTwips})
			p.GetCT().Children = append(p.GetCT().Children, ctypes.ParagraphChild{
				Run: &ctypes.Run{Children: []ctypes.RunChild{{Tab: &ctypes.Empty{}}}},
			})
			p.AddText(e.Dates).Italic(true)
		}
	}

	if e.Subtitle != "" {
		rd.AddEmptyParagraph().AddText(e.Subtitle).Italic(true)
	}
	for _, d := range e.Details {
		rd.AddEmptyParagraph().AddText(d).Color("595959")
	}
	if e.Body != "" {
		multiline(rd.AddEmptyParagraph(), e.Body)
	}
	for _, b := range e.Bullets {
		p := rd.AddParagraph(b)
		p.Style("ListBullet")
		p.Numbering(bulletNumID, 0)
	}
}

func paraProps(p *wdoc.Paragraph) *ctypes.ParagraphProp {
	ct := p.GetCT()
	if ct.Property == nil {
		ct.Property = ctypes.DefaultParaProperty()
	}
	return ct.Property
}

// multiline keeps explicit newlines as line breaks within one paragraph
func multiline(p *wdoc.Paragraph, s string) {
	for i, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if i > 0 {
			p.AddRun().AddBreak(nil)
		}
		if line != "" {
			p.AddText(line)
		}
	}
}

// coreXML replaces the template's metadata so the document carries the
// person's name and the export time
func coreXML(title string, created time.Time) []byte {
	var esc bytes.Buffer
	_ = xml.EscapeText(&esc, []byte(title))
	stamp := created.Format(time.RFC3339)

	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
<dc:title>%s</dc:title>
<dc:creator>quickcv</dc:creator>
<cp:lastModifiedBy>quickcv</cp:lastModifiedBy>
<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`, esc.String(), stamp, stamp))
}
