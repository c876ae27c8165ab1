package app

import (
	"errors"

	"github.com/khrees2412/quickcv/internal/export"
	"github.com/khrees2412/quickcv/internal/store"
)

// Sentinel errors for common application errors
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrPersistence    = store.ErrPersistence
	ErrSchemaMismatch = store.ErrSchemaMismatch
	ErrExport         = export.ErrExport
	ErrExportBusy     = export.ErrBusy
)
