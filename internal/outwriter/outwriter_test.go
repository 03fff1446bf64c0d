package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

func sampleReport() *schema.AnalysisReport {
	return &schema.AnalysisReport{
		Frequency: []schema.FrequencyBucket{
			{Bucket: "2024-01", Count: 3},
			{Bucket: "2024-02", Count: 1},
		},
		Contributors: []schema.RankEntry{
			{Entity: "Alice", Count: 3},
			{Entity: "Bob", Count: 1},
		},
		Hours:    []schema.FrequencyBucket{{Bucket: "9", Count: 4}},
		Weekdays: []schema.FrequencyBucket{{Bucket: "Monday", Count: 4}},
		Months:   []schema.FrequencyBucket{{Bucket: "January", Count: 3}, {Bucket: "February", Count: 1}},
		Keywords: []schema.RankEntry{{Entity: "parser", Count: 2}},
		Changes: schema.ChangeSummary{
			TotalCommits:      4,
			TotalFilesChanged: 8,
			TotalInsertions:   40,
			TotalDeletions:    12,
			AvgFilesPerCommit: 2.0,
			AvgInsertions:     10.0,
			AvgDeletions:      3.0,
		},
	}
}

func TestWriteReportTables(t *testing.T) {
	report := sampleReport()
	cfg := &contract.Config{
		Granularity: schema.MonthGranularity,
		Output:      schema.TextOut,
		Width:       120,
	}

	var buf bytes.Buffer
	err := writeReportTables(report, cfg, time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Commit frequency (month)")
	assert.Contains(t, out, "Developer activity")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "Change summary")
	assert.Contains(t, out, "Analyzed 4 commits")
	// No contributor section without a filter
	assert.NotContains(t, out, "Contributor:")
}

func TestWriteReportTablesWithContributor(t *testing.T) {
	report := sampleReport()
	report.Contributor = &schema.ContributorSummary{
		Developer: "Alice",
		ChangeSummary: schema.ChangeSummary{
			TotalCommits: 3,
		},
	}
	cfg := &contract.Config{
		Granularity: schema.MonthGranularity,
		Output:      schema.TextOut,
		Width:       120,
	}

	var buf bytes.Buffer
	err := writeReportTables(report, cfg, time.Millisecond, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Contributor: Alice")
}

func TestReportCSVRows(t *testing.T) {
	report := sampleReport()
	rows := reportCSVRows(report)

	// 2 frequency + 2 contributors + 1 hour + 1 weekday + 2 months +
	// 1 keyword + 7 summary metrics
	require.Len(t, rows, 16)
	assert.Equal(t, []string{"frequency", "2024-01", "3"}, rows[0])
	assert.Equal(t, []string{"contributors", "Alice", "3"}, rows[2])
	assert.Equal(t, []string{"changes", "total_commits", "4"}, rows[9])
	assert.Equal(t, []string{"changes", "avg_insertions_per_commit", "10.00"}, rows[14])
}

func TestReportCSVRowsWithContributor(t *testing.T) {
	report := sampleReport()
	report.Contributor = &schema.ContributorSummary{Developer: "Alice"}
	rows := reportCSVRows(report)
	require.Len(t, rows, 23)
	assert.Equal(t, "contributor:Alice", rows[16][0])
}

func TestWriteReportJSONToFile(t *testing.T) {
	report := sampleReport()
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: filepath.Join(t.TempDir(), "report.json"),
	}

	err := WriteReport(report, cfg, time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded schema.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.Frequency, decoded.Frequency)
	assert.Equal(t, report.Changes, decoded.Changes)
	assert.Nil(t, decoded.Contributor)
}

func TestWriteReportCSVToFile(t *testing.T) {
	report := sampleReport()
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: filepath.Join(t.TempDir(), "report.csv"),
	}

	err := WriteReport(report, cfg, time.Millisecond)
	require.NoError(t, err)

	f, err := os.Open(cfg.OutputFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"section", "key", "value"}, records[0])
	assert.Len(t, records, 17) // header + 16 rows
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"commits": 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"commits": 5}`, buf.String())
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(cw *csv.Writer) error {
		return cw.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a,b", lines[0])
	assert.Equal(t, "1,2", lines[1])
}

func TestGetMaxTableEntityWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "override wide", width: 200, expected: 60},
		{name: "override narrow", width: 40, expected: 15},
		{name: "override medium", width: 70, expected: 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxTableEntityWidth(cfg))
		})
	}
}
