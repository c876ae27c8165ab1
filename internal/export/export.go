// Package export materializes a resume as document files. One export runs
// at a time; files appear in the target directory only when complete.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrBusy is returned while another export is in flight
	ErrBusy = errors.New("an export is already in progress")
	// ErrExport wraps every rendering and file materialization failure
	ErrExport = errors.New("export failed")
)

// Format selects the produced documents
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatAll  Format = "all"
)

// ParseFormat accepts pdf, docx, word and all
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "docx", "word":
		return FormatDOCX, nil
	case "all", "both":
		return FormatAll, nil
	}
	return "", fmt.Errorf("unknown export format %q (want pdf, docx or all)", s)
}

// Encoder renders a resume fully into memory
type Encoder interface {
	Encode(ctx context.Context, r models.Resume) ([]byte, error)
	Ext() string
}

// Exporter runs exports with at most one in flight
type Exporter struct {
	pdf    Encoder
	docx   Encoder
	sem    *semaphore.Weighted
	logger zerolog.Logger
}

// NewExporter creates an Exporter using the given encoders
func NewExporter(pdf, docx Encoder, logger zerolog.Logger) *Exporter {
	return &Exporter{
		pdf:    pdf,
		docx:   docx,
		sem:    semaphore.NewWeighted(1),
		logger: logger,
	}
}

// WithPDF returns an Exporter drawing PDFs with enc. The copy shares the
// in-flight limit with e.
func (e *Exporter) WithPDF(enc Encoder) *Exporter {
	c := *e
	c.pdf = enc
	return &c
}

// Busy reports whether an export is currently running
func (e *Exporter) Busy() bool {
	if e.sem.TryAcquire(1) {
		e.sem.Release(1)
		return false
	}
	return true
}

type rendered struct {
	path string
	data []byte
}

// Export renders r in the requested format and writes the result into
// dir. It returns the written paths. r is never modified.
func (e *Exporter) Export(ctx context.Context, r models.Resume, format Format, dir string) ([]string, error) {
	if !e.sem.TryAcquire(1) {
		return nil, ErrBusy
	}
	defer e.sem.Release(1)

	encoders, err := e.encoders(format)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	base := FileName(r.PersonalInfo.Name)

	// render everything before touching the disk
	out := make([]rendered, len(encoders))
	g, gctx := errgroup.WithContext(ctx)
	for i, enc := range encoders {
		g.Go(func() error {
			data, err := enc.Encode(gctx, r.Clone())
			if err != nil {
				return err
			}
			out[i] = rendered{path: filepath.Join(dir, base+enc.Ext()), data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Error().Err(err).Str("format", string(format)).Msg("export render failed")
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}

	if err := writeAll(dir, out); err != nil {
		e.logger.Error().Err(err).Str("dir", dir).Msg("export write failed")
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}

	paths := make([]string, len(out))
	for i, o := range out {
		paths[i] = o.path
	}
	e.logger.Info().Strs("files", paths).Dur("took", time.Since(start)).Msg("export finished")
	return paths, nil
}

func (e *Exporter) encoders(format Format) ([]Encoder, error) {
	switch format {
	case FormatPDF:
		return []Encoder{e.pdf}, nil
	case FormatDOCX:
		return []Encoder{e.docx}, nil
	case FormatAll:
		return []Encoder{e.pdf, e.docx}, nil
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

// writeAll writes every file to a temporary name first and renames them
// into place only when all writes succeeded. Nothing is left behind on
// failure.
func writeAll(dir string, files []rendered) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, t := range temps {
			os.Remove(t)
		}
	}

	for _, f := range files {
		tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
		temps = append(temps, tmp)
		if err := os.WriteFile(tmp, f.data, 0644); err != nil {
			cleanup()
			return fmt.Errorf("write %s: %w", filepath.Base(f.path), err)
		}
	}

	for i, f := range files {
		if err := os.Rename(temps[i], f.path); err != nil {
			cleanup()
			for _, moved := range files[:i] {
				os.Remove(moved.path)
			}
			return fmt.Errorf("move %s into place: %w", filepath.Base(f.path), err)
		}
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^\p{L}\p{M}\p{N}._-]+`)

// FileName derives the base file name from the person's name, e.g.
// "Ada Lovelace" becomes "Ada_Lovelace_Resume".
func FileName(name string) string {
	clean := strings.Trim(unsafeChars.ReplaceAllString(strings.TrimSpace(name), "_"), "._-")
	if clean == "" {
		return "Resume"
	}
	return clean + "_Resume"
}
