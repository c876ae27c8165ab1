package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore creates a store in a temporary directory
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func fullResume() models.Resume {
	r := models.Default()
	r.PersonalInfo = models.PersonalInfo{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "+44 20 7946 0000",
		Address:     "12 St James's Square, London",
		DateOfBirth: "1815-12-10",
		LinkedIn:    "https://linkedin.com/in/ada",
	}
	r.Summary = "First programmer.\nPoet of science."
	r.Education = []models.Education{{Institution: "Private tutoring", Degree: "Mathematics", Field: "Analysis", StartDate: "1830-01-01", EndDate: "1835-06-30", GPA: "4.0"}}
	r.Experience = []models.Experience{
		{Company: "Analytical Engine", Position: "Programmer", StartDate: "1842-01-01", EndDate: "1843-09-01", Description: "Notes on the engine", Achievements: []string{"Note G", "Bernoulli numbers"}},
		{Company: "Self", Position: "Writer", Achievements: []string{}},
	}
	r.Skills.Technical = []string{"Algorithms", "Algorithms"}
	r.Skills.Languages = []string{"English", "French"}
	r.Certifications = []models.Certification{{Name: "Royal Society", Issuer: "RS", Date: "1843-01-01"}}
	r.Awards = []models.Award{{Title: "Honorary", Issuer: "Society", Date: "1840-05-01", Description: "For notes"}}
	return r
}

func TestLoadWithoutSnapshot(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, r := range []models.Resume{models.Default(), fullResume()} {
		require.NoError(t, s.Save(ctx, r))

		got, ok, err := s.Load(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, r, got)
	}

	savedAt, ok, err := s.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, savedAt.IsZero())
}

func TestSaveOverwritesSingleSlot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := models.Default()
	first.Summary = "first"
	second := models.Default()
	second.Summary = "second"

	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, second))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count))
	assert.Equal(t, 1, count)

	got, _, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Summary)
}

func TestLoadSchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{"personalInfo":`},
		{name: "missing sections", raw: `{"personalInfo":{"name":"","email":"","phone":"","address":""}}`},
		{name: "null list", raw: `{"personalInfo":{"name":"","email":"","phone":"","address":""},"summary":"","education":null,"experience":[],"skills":{"technical":[],"languages":[],"soft":[]},"certifications":[],"awards":[]}`},
		{name: "future field", raw: `{"version":2,"personalInfo":{"name":"","email":"","phone":"","address":""},"summary":"","education":[],"experience":[],"skills":{"technical":[],"languages":[],"soft":[]},"certifications":[],"awards":[]}`},
		{name: "wrong type", raw: `{"personalInfo":{"name":1,"email":"","phone":"","address":""},"summary":"","education":[],"experience":[],"skills":{"technical":[],"languages":[],"soft":[]},"certifications":[],"awards":[]}`},
		{name: "bad date", raw: `{"personalInfo":{"name":"","email":"","phone":"","address":""},"summary":"","education":[{"startDate":"Sept 2010"}],"experience":[],"skills":{"technical":[],"languages":[],"soft":[]},"certifications":[],"awards":[]}`},
	}

	s := openTestStore(t)
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.db.Exec(`INSERT OR REPLACE INTO snapshots (key, data, saved_at) VALUES (?, ?, CURRENT_TIMESTAMP)`, SnapshotKey, tt.raw)
			require.NoError(t, err)

			_, ok, err := s.Load(ctx)
			assert.True(t, ok)
			assert.ErrorIs(t, err, ErrSchemaMismatch)

			var schemaErr *SchemaError
			assert.True(t, errors.As(err, &schemaErr))
		})
	}
}

func TestDecodeAcceptsOriginalSnapshot(t *testing.T) {
	// entries written by older builds may omit optional item fields
	raw := `{"personalInfo":{"name":"Ada","email":"","phone":"","address":"","dateOfBirth":"","linkedin":"","github":"","portfolio":""},
		"summary":"","education":[{"institution":"X","degree":"","field":"","startDate":"","endDate":""}],
		"experience":[{"company":"Y","position":"","startDate":"","endDate":"","description":""}],
		"skills":{"technical":["Go"],"languages":[],"soft":[]},"certifications":[{"name":"C","issuer":"","date":""}],"awards":[]}`

	r, err := Decode([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Ada", r.PersonalInfo.Name)
	assert.Equal(t, "", r.Education[0].GPA)
	assert.NotNil(t, r.Experience[0].Achievements)
	assert.Equal(t, "", r.Certifications[0].URL)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, fullResume()))
	require.NoError(t, s.Delete(ctx))

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClosedStoreReportsPersistenceFailure(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Close())

	err := s.Save(context.Background(), models.Default())
	assert.ErrorIs(t, err, ErrPersistence)

	_, _, err = s.Load(context.Background())
	assert.ErrorIs(t, err, ErrPersistence)
}
