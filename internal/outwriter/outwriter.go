// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// WriteReport outputs the analysis report, dispatching based on the output
// format configured.
func WriteReport(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSV(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(report, cfg, duration, w)
		}, "Wrote tables")
	}
	return nil
}

// writeReportJSON handles opening the file and calling the JSON writer.
func writeReportJSON(report *schema.AnalysisReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeReportCSV flattens every populated report section into
// section/key/value rows so the whole report fits one CSV stream.
func writeReportCSV(report *schema.AnalysisReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, []string{"section", "key", "value"}, func(cw *csv.Writer) error {
			for _, row := range reportCSVRows(report) {
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeReportTables generates and writes the human-readable tables.
func writeReportTables(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	maxWidth := GetMaxTableEntityWidth(cfg)

	sections := []func() error{
		func() error {
			title := fmt.Sprintf("Commit frequency (%s)", cfg.Granularity)
			return writeBucketTable(writer, title, "Period", report.Frequency, maxWidth)
		},
		func() error {
			return writeRankTable(writer, "Developer activity", "Developer", report.Contributors, maxWidth)
		},
		func() error {
			return writeBucketTable(writer, "Commits by hour", "Hour", report.Hours, maxWidth)
		},
		func() error {
			return writeBucketTable(writer, "Commits by day of week", "Day", report.Weekdays, maxWidth)
		},
		func() error {
			return writeBucketTable(writer, "Commits by month", "Month", report.Months, maxWidth)
		},
		func() error {
			return writeRankTable(writer, "Message keywords", "Keyword", report.Keywords, maxWidth)
		},
		func() error {
			return writeSummaryTable(writer, "Change summary", report.Changes)
		},
	}
	if report.Contributor != nil {
		sections = append(sections, func() error {
			title := "Contributor: " + report.Contributor.Developer
			return writeSummaryTable(writer, title, report.Contributor.ChangeSummary)
		})
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Analyzed %d commits in %v\n", report.Changes.TotalCommits, duration); err != nil {
		return err
	}
	return nil
}

// writeBucketTable writes one frequency table section.
func writeBucketTable(writer io.Writer, title, keyHeader string, buckets []schema.FrequencyBucket, maxWidth int) error {
	if _, err := fmt.Fprintln(writer, contract.InfoColor.Sprint(title)); err != nil {
		return err
	}
	table := tablewriter.NewWriter(writer)
	table.Header([]string{keyHeader, "Commits"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, b := range buckets {
		data = append(data, []string{
			contract.TruncateEntity(b.Bucket, maxWidth),
			strconv.Itoa(b.Count),
		})
	}
	return renderTable(writer, table, data)
}

// writeRankTable writes one ranking table section with rank numbers.
func writeRankTable(writer io.Writer, title, keyHeader string, entries []schema.RankEntry, maxWidth int) error {
	if _, err := fmt.Fprintln(writer, contract.InfoColor.Sprint(title)); err != nil {
		return err
	}
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", keyHeader, "Commits"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateEntity(e.Entity, maxWidth),
			strconv.Itoa(e.Count),
		})
	}
	return renderTable(writer, table, data)
}

// writeSummaryTable writes the scalar metrics of a change summary.
func writeSummaryTable(writer io.Writer, title string, s schema.ChangeSummary) error {
	if _, err := fmt.Fprintln(writer, contract.InfoColor.Sprint(title)); err != nil {
		return err
	}
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	return renderTable(writer, table, summaryRows(s))
}

// renderTable bulk-loads rows, renders and appends a blank separator line.
func renderTable(writer io.Writer, table *tablewriter.Table, data [][]string) error {
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// summaryRows formats one change summary as metric/value string pairs.
func summaryRows(s schema.ChangeSummary) [][]string {
	return [][]string{
		{"Total commits", strconv.Itoa(s.TotalCommits)},
		{"Total files changed", strconv.Itoa(s.TotalFilesChanged)},
		{"Total insertions", strconv.Itoa(s.TotalInsertions)},
		{"Total deletions", strconv.Itoa(s.TotalDeletions)},
		{"Avg files per commit", fmt.Sprintf("%.2f", s.AvgFilesPerCommit)},
		{"Avg insertions per commit", fmt.Sprintf("%.2f", s.AvgInsertions)},
		{"Avg deletions per commit", fmt.Sprintf("%.2f", s.AvgDeletions)},
	}
}

// reportCSVRows produces the flattened rows for every populated section.
func reportCSVRows(report *schema.AnalysisReport) [][]string {
	var rows [][]string
	appendBuckets := func(section string, buckets []schema.FrequencyBucket) {
		for _, b := range buckets {
			rows = append(rows, []string{section, b.Bucket, strconv.Itoa(b.Count)})
		}
	}
	appendRanks := func(section string, entries []schema.RankEntry) {
		for _, e := range entries {
			rows = append(rows, []string{section, e.Entity, strconv.Itoa(e.Count)})
		}
	}
	appendSummary := func(section string, s schema.ChangeSummary) {
		rows = append(rows, [][]string{
			{section, "total_commits", strconv.Itoa(s.TotalCommits)},
			{section, "total_files_changed", strconv.Itoa(s.TotalFilesChanged)},
			{section, "total_insertions", strconv.Itoa(s.TotalInsertions)},
			{section, "total_deletions", strconv.Itoa(s.TotalDeletions)},
			{section, "avg_files_per_commit", fmt.Sprintf("%.2f", s.AvgFilesPerCommit)},
			{section, "avg_insertions_per_commit", fmt.Sprintf("%.2f", s.AvgInsertions)},
			{section, "avg_deletions_per_commit", fmt.Sprintf("%.2f", s.AvgDeletions)},
		}...)
	}

	appendBuckets("frequency", report.Frequency)
	appendRanks("contributors", report.Contributors)
	appendBuckets("hours", report.Hours)
	appendBuckets("weekdays", report.Weekdays)
	appendBuckets("months", report.Months)
	appendRanks("keywords", report.Keywords)
	appendSummary("changes", report.Changes)
	if report.Contributor != nil {
		appendSummary("contributor:"+report.Contributor.Developer, report.Contributor.ChangeSummary)
	}
	return rows
}
