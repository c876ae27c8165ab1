package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// DefaultChromeTimeout bounds a single browser render
const DefaultChromeTimeout = 60 * time.Second

// ChromeEngine prints the laid out pages with headless Chrome. Every line
// is absolutely positioned so both engines paginate identically.
type ChromeEngine struct {
	timeout time.Duration
	logger  zerolog.Logger
}

// NewChromeEngine creates an engine that launches a browser per render
func NewChromeEngine(timeout time.Duration, logger zerolog.Logger) *ChromeEngine {
	if timeout <= 0 {
		timeout = DefaultChromeTimeout
	}
	return &ChromeEngine{timeout: timeout, logger: logger}
}

func (e *ChromeEngine) Name() string { return EngineChrome }

// Draw renders pages into HTML and prints it to PDF
func (e *ChromeEngine) Draw(ctx context.Context, title string, pages []Page) ([]byte, error) {
	html, err := renderHTML(title, pages)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	browserCtx, closeBrowser := e.browserContext(ctx)
	defer closeBrowser()

	var data []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPreferCSSPageSize(true).
				WithPrintBackground(true).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			data = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	e.logger.Debug().Int("pages", len(pages)).Int("bytes", len(data)).Msg("chrome render finished")
	return data, nil
}

func (e *ChromeEngine) browserContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-extensions", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		msg := fmt.Sprintf(format, v...)
		if strings.Contains(msg, "could not unmarshal event") {
			return
		}
		e.logger.Debug().Str("source", "chromedp").Msg(msg)
	}))

	return ctx, func() {
		cancelCtx()
		cancelAlloc()
	}
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: 210mm 297mm; margin: 0; }
html, body { margin: 0; padding: 0; background: white; }
* { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
.page { position: relative; width: 210mm; height: 297mm; overflow: hidden; page-break-after: always; }
.page:last-child { page-break-after: auto; }
.t { position: absolute; white-space: pre; line-height: 1; font-family: Helvetica, Arial, sans-serif; }
.rule { position: absolute; height: 0; }
{{range .Classes}}{{.}}
{{end}}</style>
</head>
<body>
{{range .Pages}}<div class="page">
{{range .Rules}}<div class="rule" style="left: {{mm .X1}}; top: {{mm .Y}}; width: {{mm (width .)}}"></div>
{{end}}{{range .Lines}}<span class="t {{class .Style}}" style="left: {{mm .X}}; top: {{mm (top .)}}">{{.Text}}</span>
{{end}}</div>
{{end}}</body>
</html>`

const ptToMM = 25.4 / 72

var pageTemplate = template.Must(template.New("pages").Funcs(template.FuncMap{
	"mm":    func(v float64) string { return fmt.Sprintf("%.2fmm", v) },
	"width": func(r Rule) float64 { return r.X2 - r.X1 },
	"class": func(s Style) string { return s.Font().Class },
	// spans are placed by their top edge; with line-height 1 the
	// baseline of Helvetica sits at roughly 0.85em
	"top": func(l Line) float64 { return l.Y - 0.85*l.Style.Font().Size*ptToMM },
}).Parse(pageHTML))

func renderHTML(title string, pages []Page) (string, error) {
	var classes []template.CSS
	for _, s := range []Style{StyleName, StyleContact, StyleHeading, StyleTitle, StyleMeta, StyleBody, StyleFooter} {
		classes = append(classes, template.CSS(styleRule(s)))
	}
	classes = append(classes, template.CSS(fmt.Sprintf(".rule { border-top: 0.3mm solid %s; }", rgb(StyleHeading.Font().Color))))

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Title   string
		Classes []template.CSS
		Pages   []Page
	}{title, classes, pages})
	if err != nil {
		return "", fmt.Errorf("render page html: %w", err)
	}
	return buf.String(), nil
}

func styleRule(s Style) string {
	f := s.Font()
	weight, fontStyle := "normal", "normal"
	if strings.Contains(f.Emphasis, "B") {
		weight = "bold"
	}
	if strings.Contains(f.Emphasis, "I") {
		fontStyle = "italic"
	}
	return fmt.Sprintf(".%s { font-size: %.1fpt; font-weight: %s; font-style: %s; color: %s; }",
		f.Class, f.Size, weight, fontStyle, rgb(f.Color))
}

func rgb(c [3]int) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}
