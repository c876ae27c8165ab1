package pdf

import (
	"fmt"
	"strings"

	"github.com/khrees2412/quickcv/internal/document"
	"golang.org/x/text/encoding/charmap"
)

// A4 portrait geometry in millimetres
const (
	PageWidth  = 210.0
	PageHeight = 297.0
	Margin     = 20.0

	contentBottom = PageHeight - Margin
	footerY       = PageHeight - 10

	bulletIndent = 5.0
	dateGap      = 4.0
	entryGap     = 3.0
	sectionGap   = 3.0
)

// Measurer returns the printed width of text in millimetres
type Measurer interface {
	Width(s Style, text string) float64
}

// Line is one positioned run of text. Y is the baseline.
type Line struct {
	X     float64
	Y     float64
	Text  string
	Style Style
}

// Rule is a horizontal line drawn under a section heading
type Rule struct {
	X1 float64
	X2 float64
	Y  float64
}

// Page holds everything drawn on one page
type Page struct {
	Number int
	Lines  []Line
	Rules  []Rule
}

// row is the smallest unit the paginator moves. Coordinates are relative
// to the top of the row.
type row struct {
	height float64
	lines  []Line
	rules  []Rule
}

func (r row) spacer() bool {
	return len(r.lines) == 0 && len(r.rules) == 0
}

// block is kept on one page whenever it fits on one
type block []row

// fitHeight is the height b needs on the page, leaving out trailing
// spacers since a page may end right after the content
func (b block) fitHeight() float64 {
	end := len(b)
	for end > 0 && b[end-1].spacer() {
		end--
	}
	var h float64
	for _, r := range b[:end] {
		h += r.height
	}
	return h
}

type layouter struct {
	m     Measurer
	width float64
	pages []Page
	y     float64
	empty bool
}

// Layout wraps and paginates doc. It fails with a CharsetError when the
// document holds text outside Windows-1252.
func Layout(doc document.Document, m Measurer) ([]Page, error) {
	if err := checkCharset(doc); err != nil {
		return nil, err
	}

	l := &layouter{m: m, width: PageWidth - 2*Margin}
	l.newPage()
	l.place(l.header(doc))

	for _, s := range doc.Sections {
		for _, b := range l.section(s) {
			l.place(b)
		}
	}

	l.footers()
	return l.pages, nil
}

func (l *layouter) newPage() {
	l.pages = append(l.pages, Page{Number: len(l.pages) + 1})
	l.y = Margin
	l.empty = true
}

// place puts b on the current page, or on a fresh one when it does not
// fit. A block taller than a page starts on a fresh page and then flows
// row by row. Spacers are dropped at the top and bottom of a page.
func (l *layouter) place(b block) {
	if l.y+b.fitHeight() > contentBottom && !l.empty {
		l.newPage()
	}
	for _, r := range b {
		if r.spacer() && (l.empty || l.y+r.height > contentBottom) {
			continue
		}
		if l.y+r.height > contentBottom && !l.empty {
			l.newPage()
		}
		l.put(r)
	}
}

func (l *layouter) put(r row) {
	p := &l.pages[len(l.pages)-1]
	for _, ln := range r.lines {
		ln.Y += l.y
		p.Lines = append(p.Lines, ln)
	}
	for _, rule := range r.rules {
		rule.Y += l.y
		p.Rules = append(p.Rules, rule)
	}
	l.y += r.height
	l.empty = false
}

func (l *layouter) footers() {
	total := len(l.pages)
	for i := range l.pages {
		text := fmt.Sprintf("Page %d of %d", i+1, total)
		l.pages[i].Lines = append(l.pages[i].Lines, Line{
			X:     (PageWidth - l.m.Width(StyleFooter, text)) / 2,
			Y:     footerY,
			Text:  text,
			Style: StyleFooter,
		})
	}
}

func (l *layouter) header(doc document.Document) block {
	var b block
	if doc.Name != "" {
		b = append(b, l.paragraph(StyleName, Margin, l.width, doc.Name)...)
	}
	if len(doc.Contact) > 0 {
		b = append(b, l.paragraph(StyleContact, Margin, l.width, strings.Join(doc.Contact, " | "))...)
	}
	if len(b) > 0 {
		b = append(b, row{height: 2})
	}
	return b
}

// section returns the blocks of s with the heading merged into the first
// one so a heading never ends a page on its own.
func (l *layouter) section(s document.Section) []block {
	var blocks []block

	switch s.Kind {
	case document.Summary:
		blocks = append(blocks, l.paragraph(StyleBody, Margin, l.width, s.Text))
	case document.Skills:
		for _, sk := range s.Skills {
			blocks = append(blocks, l.skill(sk))
		}
	default:
		for _, e := range s.Entries {
			blocks = append(blocks, l.entry(e))
		}
	}

	heading := l.heading(s.Title)
	if len(blocks) == 0 {
		return []block{heading}
	}
	blocks[0] = append(heading, blocks[0]...)
	return blocks
}

func (l *layouter) heading(title string) block {
	r := l.textRow(StyleHeading, Margin, title)
	r.rules = append(r.rules, Rule{X1: Margin, X2: Margin + l.width, Y: StyleHeading.baseline() + 1.5})
	return block{{height: sectionGap}, r, {height: 2}}
}

func (l *layouter) entry(e document.Entry) block {
	var b block

	if e.Title != "" || e.Dates != "" {
		var datesWidth float64
		if e.Dates != "" {
			datesWidth = l.m.Width(StyleMeta, e.Dates)
		}
		titleWidth := l.width
		if datesWidth > 0 {
			titleWidth -= datesWidth + dateGap
		}

		for i, t := range l.wrap(e.Title, StyleTitle, titleWidth, l.width) {
			r := l.textRow(StyleTitle, Margin, t)
			if i == 0 && e.Dates != "" {
				r.lines = append(r.lines, Line{
					X:     Margin + l.width - datesWidth,
					Y:     StyleTitle.baseline(),
					Text:  e.Dates,
					Style: StyleMeta,
				})
			}
			b = append(b, r)
		}
	}

	if e.Subtitle != "" {
		b = append(b, l.paragraph(StyleMeta, Margin, l.width, e.Subtitle)...)
	}
	for _, d := range e.Details {
		b = append(b, l.paragraph(StyleMeta, Margin, l.width, d)...)
	}
	if e.Body != "" {
		b = append(b, l.paragraph(StyleBody, Margin, l.width, e.Body)...)
	}
	for _, bullet := range e.Bullets {
		b = append(b, l.bullet(bullet)...)
	}

	if len(b) > 0 {
		b = append(b, row{height: entryGap})
	}
	return b
}

func (l *layouter) bullet(text string) block {
	rows := l.paragraph(StyleBody, Margin+bulletIndent, l.width-bulletIndent, text)
	if len(rows) > 0 {
		rows[0].lines = append(rows[0].lines, Line{
			X:     Margin + 1.5,
			Y:     StyleBody.baseline(),
			Text:  "•",
			Style: StyleBody,
		})
	}
	return rows
}

// skill draws "Label: items" with the label in bold and the items
// continuing on the same row.
func (l *layouter) skill(sk document.SkillLine) block {
	label := sk.Label + ":"
	indent := l.m.Width(StyleTitle, label) + 2

	var b block
	for i, t := range l.wrap(sk.Items, StyleBody, l.width-indent, l.width) {
		r := row{height: StyleBody.Font().Leading}
		x := Margin
		if i == 0 {
			r.lines = append(r.lines, Line{X: Margin, Y: StyleBody.baseline(), Text: label, Style: StyleTitle})
			x += indent
		}
		if t != "" {
			r.lines = append(r.lines, Line{X: x, Y: StyleBody.baseline(), Text: t, Style: StyleBody})
		}
		b = append(b, r)
	}
	return append(b, row{height: 1})
}

func (l *layouter) paragraph(s Style, x, width float64, text string) block {
	var b block
	for _, t := range l.wrap(text, s, width, width) {
		b = append(b, l.textRow(s, x, t))
	}
	return b
}

func (l *layouter) textRow(s Style, x float64, text string) row {
	r := row{height: s.Font().Leading}
	if text != "" {
		r.lines = append(r.lines, Line{X: x, Y: s.baseline(), Text: text, Style: s})
	}
	return r
}

// wrap breaks text into lines no wider than first (for the first line)
// and rest (for the others). Explicit newlines start a new line; words
// wider than a whole line are split between runes.
func (l *layouter) wrap(text string, s Style, first, rest float64) []string {
	var out []string
	width := first
	emit := func(line string) {
		out = append(out, line)
		width = rest
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			emit("")
			continue
		}

		line := ""
		for _, w := range words {
			candidate := w
			if line != "" {
				candidate = line + " " + w
			}
			if l.m.Width(s, candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				emit(line)
			}
			for l.m.Width(s, w) > width {
				head, tail := l.split(w, s, width)
				if tail == "" {
					break
				}
				emit(head)
				w = tail
			}
			line = w
		}
		emit(line)
	}
	return out
}

// split returns the longest prefix of word that fits, at least one rune
func (l *layouter) split(word string, s Style, width float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && l.m.Width(s, string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

func checkCharset(doc document.Document) error {
	texts := append([]string{doc.Name}, doc.Contact...)
	for _, s := range doc.Sections {
		texts = append(texts, s.Title, s.Text)
		for _, e := range s.Entries {
			texts = append(texts, e.Title, e.Subtitle, e.Dates, e.Body)
			texts = append(texts, e.Details...)
			texts = append(texts, e.Bullets...)
		}
		for _, sk := range s.Skills {
			texts = append(texts, sk.Label, sk.Items)
		}
	}

	for _, t := range texts {
		for _, r := range t {
			if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
				return &CharsetError{Rune: r, Text: t}
			}
		}
	}
	return nil
}
