package persist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/gitpulse/schema"
)

// CommitRow is the Parquet projection of a commit record. It keeps the
// same column set and order as the CSV format.
type CommitRow struct {
	SHA            string `parquet:"sha,snappy"`
	AuthorName     string `parquet:"author_name,snappy"`
	AuthorEmail    string `parquet:"author_email,snappy"`
	CommitterName  string `parquet:"committer_name,snappy"`
	CommitterEmail string `parquet:"committer_email,snappy"`
	Datetime       string `parquet:"datetime,snappy"`
	Message        string `parquet:"message,snappy"`
	Insertions     int32  `parquet:"insertions,snappy"`
	Deletions      int32  `parquet:"deletions,snappy"`
	LinesChanged   int32  `parquet:"lines_changed,snappy"`
	FilesChanged   int32  `parquet:"files_changed,snappy"`
	Parents        int32  `parquet:"parents,snappy"`
}

// RowsFromCollection converts records into Parquet rows.
func RowsFromCollection(collection schema.CommitCollection) []CommitRow {
	rows := make([]CommitRow, 0, len(collection))
	for _, rec := range collection {
		rows = append(rows, CommitRow{
			SHA:            rec.SHA,
			AuthorName:     rec.AuthorName,
			AuthorEmail:    rec.AuthorEmail,
			CommitterName:  rec.CommitterName,
			CommitterEmail: rec.CommitterEmail,
			Datetime:       rec.Timestamp.Format(schema.TimestampLayout),
			Message:        rec.Message,
			Insertions:     int32(rec.Insertions),
			Deletions:      int32(rec.Deletions),
			LinesChanged:   int32(rec.LinesChanged),
			FilesChanged:   int32(rec.FilesChanged),
			Parents:        int32(rec.Parents),
		})
	}
	return rows
}

// SaveParquet writes a collection to a Parquet file using struct schema
// inference, creating intermediate directories as needed.
func SaveParquet(collection schema.CommitCollection, destination string) (string, error) {
	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}

	file, err := os.Create(destination)
	if err != nil {
		return "", fmt.Errorf("failed to create %q: %w", destination, err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[CommitRow](file)
	if _, err := writer.Write(RowsFromCollection(collection)); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize %q: %w", destination, err)
	}
	return destination, nil
}
