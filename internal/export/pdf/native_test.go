package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uncompressedEncoder() *Encoder {
	return NewEncoder(&NativeEngine{now: func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }})
}

func pageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestMetricsWidths(t *testing.T) {
	m := NewMetrics()

	regular := m.Width(StyleBody, "Hello")
	assert.Greater(t, regular, 0.0)
	assert.Greater(t, m.Width(StyleTitle, "Hello"), regular)
	assert.Equal(t, 0.0, m.Width(StyleBody, ""))
	assert.Greater(t, m.Width(StyleBody, "Café"), m.Width(StyleBody, "Caf"))
}

func TestNativeEncodeSinglePage(t *testing.T) {
	r := models.Default()
	r.PersonalInfo.Name = "Ada Lovelace"
	r.Summary = "Analyst & metaphysician"

	data, err := uncompressedEncoder().Encode(context.Background(), r)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(data))
	assert.Contains(t, string(data), "(Ada Lovelace) Tj")
	assert.Contains(t, string(data), "(Page 1 of 1) Tj")
	assert.NotContains(t, string(data), "(Awards & Honors) Tj")
}

func TestNativeEncodeMultiplePages(t *testing.T) {
	data, err := uncompressedEncoder().Encode(context.Background(), manyEntries(15, 8))
	require.NoError(t, err)

	n := pageCount(data)
	require.Greater(t, n, 1)
	assert.Contains(t, string(data), fmt.Sprintf("(Page %d of %d) Tj", n, n))
}

func TestNativeEncodeUnsupportedCharacter(t *testing.T) {
	r := models.Default()
	r.Summary = "Fluent in 日本語"

	_, err := NewEncoder(NewNativeEngine()).Encode(context.Background(), r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedCharacter)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, EngineNative, renderErr.Engine)
}

func TestNativeEncodeDoesNotMutateResume(t *testing.T) {
	r := manyEntries(2, 2)
	before := r.Clone()

	_, err := NewEncoder(NewNativeEngine()).Encode(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, before, r)
}

func TestNativeDrawHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewNativeEngine().Draw(ctx, "", []Page{{Number: 1}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine("", 0, nopLogger())
	require.NoError(t, err)
	assert.Equal(t, EngineNative, e.Name())

	e, err = NewEngine("Chrome", 0, nopLogger())
	require.NoError(t, err)
	assert.Equal(t, EngineChrome, e.Name())

	_, err = NewEngine("wkhtmltopdf", 0, nopLogger())
	assert.Error(t, err)
}
