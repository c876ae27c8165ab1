package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".quickcv")
	require.NoError(t, InitializeAt(dir))

	_, err := os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", AppConfig.OutputDir)
	assert.Equal(t, "native", AppConfig.PDFEngine)
	assert.Equal(t, time.Second, AppConfig.AutosaveInterval)
	assert.Equal(t, 60*time.Second, AppConfig.ChromeTimeout)
	assert.Equal(t, filepath.Join(dir, "quickcv.db"), AppConfig.DBPath)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigPath())
}

func TestSetPersists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitializeAt(dir))

	require.NoError(t, Set("pdf_engine", "chrome"))
	require.NoError(t, Set("autosave_interval", "250ms"))
	assert.Equal(t, "chrome", Get("pdf_engine"))

	require.NoError(t, InitializeAt(dir))
	assert.Equal(t, "chrome", AppConfig.PDFEngine)
	assert.Equal(t, 250*time.Millisecond, AppConfig.AutosaveInterval)
}

func TestSetRejectsInvalidValues(t *testing.T) {
	require.NoError(t, InitializeAt(t.TempDir()))

	assert.ErrorIs(t, Set("openai_key", "x"), ErrUnknownKey)
	assert.Error(t, Set("pdf_engine", "latex"))
	assert.Error(t, Set("autosave_interval", "soon"))
	assert.Error(t, Set("log_format", "xml"))
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("QUICKCV_OUTPUT_DIR", "/tmp/cv-out")
	require.NoError(t, InitializeAt(t.TempDir()))

	assert.Equal(t, "/tmp/cv-out", AppConfig.OutputDir)
}

func TestValidate(t *testing.T) {
	valid := Config{PDFEngine: "native", LogFormat: "json", AutosaveInterval: time.Second}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.PDFEngine = "latex"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.AutosaveInterval = 0
	assert.Error(t, bad.Validate())
}
