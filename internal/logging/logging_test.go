package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "cv.pdf").Msg("export finished")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "cv.pdf", entry["file"])
	assert.Equal(t, "export finished", entry["message"])
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New("chatty", "console", &buf)

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	logger.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}
