package app

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/khrees2412/quickcv/internal/config"
	"github.com/khrees2412/quickcv/internal/session"
	"github.com/khrees2412/quickcv/internal/store"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		OutputDir:        filepath.Join(dir, "out"),
		PDFEngine:        "native",
		AutosaveInterval: time.Hour,
		LogLevel:         "debug",
		LogFormat:        "json",
		DBPath:           filepath.Join(dir, "quickcv.db"),
		ChromeTimeout:    time.Second,
	}
}

func TestCloseFlushesPendingEdits(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	a, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.Default(), a.Resume())

	a.Dispatch(session.SetPersonal{Field: models.PersonalName, Value: "Ada"})
	a.Dispatch(session.AddEducation{})
	assert.True(t, a.Autosave.Pending())
	require.NoError(t, a.Close())

	reopened, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, "Ada", reopened.Resume().PersonalInfo.Name)
	assert.Len(t, reopened.Resume().Education, 1)
	assert.NoError(t, reopened.Recovered)
}

func TestSchemaMismatchStartsFromDefault(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	s, err := store.Open(cfg.DBPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", cfg.DBPath)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO snapshots (key, data, saved_at) VALUES (?, ?, CURRENT_TIMESTAMP)`, store.SnapshotKey, `{"personalInfo":"Ada"}`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	a, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	assert.ErrorIs(t, a.Recovered, ErrSchemaMismatch)
	assert.Equal(t, models.Default(), a.Resume())
}

func TestExporterFor(t *testing.T) {
	a, err := Open(context.Background(), testConfig(t), zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	same, err := a.ExporterFor("")
	require.NoError(t, err)
	assert.Same(t, a.Exporter, same)

	other, err := a.ExporterFor("chrome")
	require.NoError(t, err)
	assert.NotSame(t, a.Exporter, other)

	_, err = a.ExporterFor("latex")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOpenRejectsUnknownEngine(t *testing.T) {
	cfg := testConfig(t)
	cfg.PDFEngine = "latex"

	_, err := Open(context.Background(), cfg, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestContextRoundTrip(t *testing.T) {
	a := &App{}
	ctx := WithApp(context.Background(), a)

	assert.Same(t, a, FromContext(ctx))
	assert.Nil(t, FromContext(context.Background()))
}
