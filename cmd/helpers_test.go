package cmd

import (
	"testing"

	"github.com/khrees2412/quickcv/internal/app"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   \t \n", nil},
		{"words", "skill add technical Go\n", []string{"skill", "add", "technical", "Go"}},
		{"double quotes", `summary set "two words"`, []string{"summary", "set", "two words"}},
		{"single quotes keep backslash", `skill add soft 'a\b'`, []string{"skill", "add", "soft", `a\b`}},
		{"escaped space", `profile set --name Ada\ Lovelace`, []string{"profile", "set", "--name", "Ada Lovelace"}},
		{"empty quoted arg", `profile set --portfolio ""`, []string{"profile", "set", "--portfolio", ""}},
		{"quote inside word", `education set 1 institution="King's College"`, []string{"education", "set", "1", "institution=King's College"}},
		{"crlf", "status\r\n", []string{"status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitArgs(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitArgsErrors(t *testing.T) {
	_, err := splitArgs(`summary set "open`)
	assert.ErrorContains(t, err, "invalid command line string")

	_, err = splitArgs(`summary set 'open`)
	assert.ErrorContains(t, err, "invalid command line string")

	_, err = splitArgs(`summary set trailing\`)
	assert.ErrorContains(t, err, "invalid command line string")

	_, err = splitArgs(`summary set Tom & Jerry`)
	assert.ErrorContains(t, err, `quote "&"`)

	args, err := splitArgs(`summary set "Tom & Jerry"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"summary", "set", "Tom & Jerry"}, args)
}

func TestParseIndex(t *testing.T) {
	i, err := parseIndex("2", 3, "award")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = parseIndex("0", 3, "award")
	assert.ErrorIs(t, err, app.ErrNotFound)

	_, err = parseIndex("4", 3, "award")
	assert.ErrorIs(t, err, app.ErrNotFound)

	_, err = parseIndex("two", 3, "award")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestParseAssignment(t *testing.T) {
	k, v, err := parseAssignment("url=https://example.com/?a=b")
	require.NoError(t, err)
	assert.Equal(t, "url", k)
	assert.Equal(t, "https://example.com/?a=b", v)

	k, v, err = parseAssignment(" gpa =")
	require.NoError(t, err)
	assert.Equal(t, "gpa", k)
	assert.Empty(t, v)

	_, _, err = parseAssignment("=value")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)
}

func TestCheckValue(t *testing.T) {
	assert.NoError(t, checkValue(models.AwardTitle, "anything at all"))
	assert.NoError(t, checkValue(models.AwardDate, "2024-02-29"))
	assert.NoError(t, checkValue(models.AwardDate, ""))
	assert.ErrorIs(t, checkValue(models.AwardDate, "2023-02-29"), app.ErrInvalidArgument)
}
