package pdf

import (
	"bytes"
	"context"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// Metrics measures text with the core font widths fpdf ships with. It is
// not safe for concurrent use.
type Metrics struct {
	pdf *fpdf.Fpdf
}

// NewMetrics returns a Measurer backed by fpdf
func NewMetrics() *Metrics {
	return &Metrics{pdf: fpdf.New("P", "mm", "A4", "")}
}

func (m *Metrics) Width(s Style, text string) float64 {
	f := s.Font()
	m.pdf.SetFont(f.Family, f.Emphasis, f.Size)
	return m.pdf.GetStringWidth(toWin1252(text))
}

// NativeEngine draws pages with go-pdf/fpdf
type NativeEngine struct {
	compress bool
	now      func() time.Time
}

// NewNativeEngine creates the default drawing engine
func NewNativeEngine() *NativeEngine {
	return &NativeEngine{compress: true, now: time.Now}
}

func (e *NativeEngine) Name() string { return EngineNative }

// Draw renders pages into a PDF document
func (e *NativeEngine) Draw(ctx context.Context, title string, pages []Page) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(e.compress)
	doc.SetMargins(Margin, Margin, Margin)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("quickcv", false)
	doc.SetCreationDate(e.now())
	if title != "" {
		doc.SetTitle(toWin1252(title), false)
		doc.SetAuthor(toWin1252(title), false)
	}

	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc.AddPage()

		doc.SetLineWidth(0.3)
		for _, r := range p.Rules {
			c := StyleHeading.Font().Color
			doc.SetDrawColor(c[0], c[1], c[2])
			doc.Line(r.X1, r.Y, r.X2, r.Y)
		}

		for _, ln := range p.Lines {
			f := ln.Style.Font()
			doc.SetFont(f.Family, f.Emphasis, f.Size)
			doc.SetTextColor(f.Color[0], f.Color[1], f.Color[2])
			doc.Text(ln.X, ln.Y, toWin1252(ln.Text))
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toWin1252 converts UTF-8 text to the byte encoding of the core fonts.
// Layout has already rejected text outside the charset.
func toWin1252(s string) string {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return out
}
