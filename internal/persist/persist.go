// Package persist reads and writes commit collections as flat tabular
// files. One file holds exactly one collection.
package persist

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/huangsam/gitpulse/schema"
)

// SaveCSV serializes a collection to destination, one row per commit,
// creating intermediate directories as needed. It returns the written
// path.
func SaveCSV(collection schema.CommitCollection, destination string) (string, error) {
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

	w := csv.NewWriter(file)
	if err := w.Write(schema.CSVHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range collection {
		row := []string{
			rec.SHA,
			rec.AuthorName,
			rec.AuthorEmail,
			rec.CommitterName,
			rec.CommitterEmail,
			rec.Timestamp.Format(schema.TimestampLayout),
			rec.Message,
			strconv.Itoa(rec.Insertions),
			strconv.Itoa(rec.Deletions),
			strconv.Itoa(rec.LinesChanged),
			strconv.Itoa(rec.FilesChanged),
			strconv.Itoa(rec.Parents),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row for commit %s: %w", rec.SHA, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %q: %w", destination, err)
	}
	return destination, nil
}

// LoadCSV deserializes a previously saved collection. Columns are
// resolved by header name so files survive reordering, and the datetime
// column parses back into the same UTC-naive instant it was written
// from.
func LoadCSV(path string) (schema.CommitCollection, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%q has no header row", path)
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[name] = i
	}
	for _, name := range schema.CSVHeader {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%q is missing column %q", path, name)
		}
	}

	collection := make(schema.CommitCollection, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec, err := recordFromRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d of %q: %w", n+2, path, err)
		}
		collection = append(collection, rec)
	}
	return collection, nil
}

func recordFromRow(row []string, idx map[string]int) (schema.CommitRecord, error) {
	var rec schema.CommitRecord

	ts, err := time.Parse(schema.TimestampLayout, row[idx["datetime"]])
	if err != nil {
		return rec, fmt.Errorf("bad datetime %q: %w", row[idx["datetime"]], err)
	}

	ints := make(map[string]int, 5)
	for _, col := range []string{"insertions", "deletions", "lines_changed", "files_changed", "parents"} {
		v, err := strconv.Atoi(row[idx[col]])
		if err != nil {
			return rec, fmt.Errorf("bad %s %q: %w", col, row[idx[col]], err)
		}
		if v < 0 {
			return rec, fmt.Errorf("negative %s %d", col, v)
		}
		ints[col] = v
	}

	rec = schema.CommitRecord{
		SHA:            row[idx["sha"]],
		AuthorName:     row[idx["author_name"]],
		AuthorEmail:    row[idx["author_email"]],
		CommitterName:  row[idx["committer_name"]],
		CommitterEmail: row[idx["committer_email"]],
		Timestamp:      ts,
		Message:        row[idx["message"]],
		Insertions:     ints["insertions"],
		Deletions:      ints["deletions"],
		LinesChanged:   ints["lines_changed"],
		FilesChanged:   ints["files_changed"],
		Parents:        ints["parents"],
	}
	return rec, nil
}
