// Package pdf encodes a resume as a paginated A4 PDF. Pagination and
// wrapping are computed here, not left to the drawing engine.
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/khrees2412/quickcv/internal/document"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/rs/zerolog"
)

// Engine names accepted by NewEngine
const (
	EngineNative = "native"
	EngineChrome = "chrome"
)

// Engine draws laid out pages
type Engine interface {
	Name() string
	Draw(ctx context.Context, title string, pages []Page) ([]byte, error)
}

// NewEngine returns the engine registered under name
func NewEngine(name string, chromeTimeout time.Duration, logger zerolog.Logger) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineNative:
		return NewNativeEngine(), nil
	case EngineChrome:
		return NewChromeEngine(chromeTimeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown pdf engine %q (want %s or %s)", name, EngineNative, EngineChrome)
	}
}

// Encoder turns a resume into PDF bytes
type Encoder struct {
	engine  Engine
	metrics func() Measurer
}

// NewEncoder creates an Encoder drawing with engine
func NewEncoder(engine Engine) *Encoder {
	return &Encoder{
		engine:  engine,
		metrics: func() Measurer { return NewMetrics() },
	}
}

// Encode lays out and draws r
func (e *Encoder) Encode(ctx context.Context, r models.Resume) ([]byte, error) {
	doc := document.Build(r)

	pages, err := Layout(doc, e.metrics())
	if err != nil {
		return nil, &RenderError{Engine: e.engine.Name(), Message: "layout failed", Cause: err}
	}

	data, err := e.engine.Draw(ctx, doc.Name, pages)
	if err != nil {
		return nil, &RenderError{Engine: e.engine.Name(), Message: "draw failed", Cause: err}
	}
	return data, nil
}

// Ext is the file extension of the encoded document
func (e *Encoder) Ext() string { return ".pdf" }
