package persist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() schema.CommitCollection {
	return schema.CommitCollection{
		{
			SHA:            "abc123",
			AuthorName:     "Alice",
			AuthorEmail:    "alice@example.com",
			CommitterName:  "Alice",
			CommitterEmail: "alice@example.com",
			Timestamp:      time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
			Message:        "Fix bug in login",
			Insertions:     10,
			Deletions:      5,
			LinesChanged:   15,
			FilesChanged:   2,
			Parents:        1,
		},
		{
			SHA:            "def456",
			AuthorName:     "Bob",
			AuthorEmail:    "bob@example.com",
			CommitterName:  "Release Bot",
			CommitterEmail: "bot@example.com",
			Timestamp:      time.Date(2023, 1, 2, 15, 30, 0, 0, time.UTC),
			Message:        "Add new feature\n\nWith a multi-line, \"quoted\" body.",
			Insertions:     20,
			Deletions:      0,
			LinesChanged:   20,
			FilesChanged:   1,
			Parents:        2,
		},
		{
			SHA:       "ghi789",
			Timestamp: time.Date(2023, 1, 3, 9, 15, 0, 0, time.UTC),
			Message:   "Update documentation",
			// degraded record: all stats zeroed, still persisted
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "dir", "commits.csv")
	original := sampleCollection()

	path, err := SaveCSV(original, dest)
	require.NoError(t, err)
	assert.Equal(t, dest, path)

	reloaded, err := LoadCSV(path)
	require.NoError(t, err)

	require.Len(t, reloaded, len(original))
	for i := range original {
		assert.Equal(t, original[i], reloaded[i], "record %d must round-trip field-for-field", i)
		assert.True(t, original[i].Timestamp.Equal(reloaded[i].Timestamp))
	}
}

func TestSaveCSVHeaderOrder(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "commits.csv")
	_, err := SaveCSV(schema.CommitCollection{}, dest)
	require.NoError(t, err)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t,
		"sha,author_name,author_email,committer_name,committer_email,datetime,message,insertions,deletions,lines_changed,files_changed,parents\n",
		string(content))
}

func TestLoadCSVEmptyCollection(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "commits.csv")
	_, err := SaveCSV(schema.CommitCollection{}, dest)
	require.NoError(t, err)

	collection, err := LoadCSV(dest)
	assert.NoError(t, err)
	assert.Empty(t, collection)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(dest, []byte("sha,message\nabc,hello\n"), 0o644))

	_, err := LoadCSV(dest)
	assert.ErrorContains(t, err, "missing column")
}

func TestLoadCSVBadDatetime(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "bad.csv")
	row := "abc,a,a@x,a,a@x,not-a-time,msg,1,1,2,1,1\n"
	require.NoError(t, os.WriteFile(dest, []byte("sha,author_name,author_email,committer_name,committer_email,datetime,message,insertions,deletions,lines_changed,files_changed,parents\n"+row), 0o644))

	_, err := LoadCSV(dest)
	assert.ErrorContains(t, err, "bad datetime")
}

func TestLoadCSVNegativeStat(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "bad.csv")
	row := "abc,a,a@x,a,a@x,2023-01-01T10:00:00,msg,-3,1,2,1,1\n"
	require.NoError(t, os.WriteFile(dest, []byte("sha,author_name,author_email,committer_name,committer_email,datetime,message,insertions,deletions,lines_changed,files_changed,parents\n"+row), 0o644))

	_, err := LoadCSV(dest)
	assert.ErrorContains(t, err, "negative")
}

func TestRowsFromCollection(t *testing.T) {
	rows := RowsFromCollection(sampleCollection())

	assert.Len(t, rows, 3)
	assert.Equal(t, "abc123", rows[0].SHA)
	assert.Equal(t, "2023-01-01T10:00:00", rows[0].Datetime)
	assert.Equal(t, int32(15), rows[0].LinesChanged)
}

func TestSaveParquet(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "export", "commits.parquet")

	path, err := SaveParquet(sampleCollection(), dest)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
