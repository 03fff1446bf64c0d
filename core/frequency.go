package core

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/huangsam/gitpulse/schema"
)

// FrequencyByPeriod buckets commits by truncating their timestamp to
// the requested granularity and counts commits per bucket, emitted in
// chronological order. Zero-count buckets within the observed range are
// omitted unless the analyzer is dense.
func (a *Analyzer) FrequencyByPeriod(granularity schema.Granularity) ([]schema.FrequencyBucket, error) {
	if _, ok := schema.ValidGranularities[granularity]; !ok {
		return nil, fmt.Errorf("%w: granularity %q", schema.ErrUnsupportedUnit, granularity)
	}

	counts := make(map[time.Time]int)
	for _, rec := range a.commits {
		counts[truncatePeriod(rec.Timestamp, granularity)]++
	}
	if len(counts) == 0 {
		return []schema.FrequencyBucket{}, nil
	}

	keys := make([]time.Time, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	var buckets []schema.FrequencyBucket
	if a.dense {
		for t := keys[0]; !t.After(keys[len(keys)-1]); t = nextPeriod(t, granularity) {
			buckets = append(buckets, schema.FrequencyBucket{
				Bucket: periodLabel(t, granularity),
				Count:  counts[t],
			})
		}
	} else {
		for _, t := range keys {
			buckets = append(buckets, schema.FrequencyBucket{
				Bucket: periodLabel(t, granularity),
				Count:  counts[t],
			})
		}
	}
	return buckets, nil
}

// TimeDistribution buckets commits by a cyclic calendar unit: hour of
// day (0-23), day of week (Monday through Sunday) or month of year
// (January through December), in ascending unit order. Zero-count
// buckets are omitted unless the analyzer is dense.
func (a *Analyzer) TimeDistribution(unit schema.TimeUnit) ([]schema.FrequencyBucket, error) {
	var size int
	var index func(time.Time) int
	var label func(int) string

	switch unit {
	case schema.HourUnit:
		size = 24
		index = func(t time.Time) int { return t.Hour() }
		label = strconv.Itoa
	case schema.DayOfWeekUnit:
		size = 7
		// Go weeks start on Sunday; shift so Monday is 0
		index = func(t time.Time) int { return (int(t.Weekday()) + 6) % 7 }
		label = schema.DayName
	case schema.MonthUnit:
		size = 12
		index = func(t time.Time) int { return int(t.Month()) - 1 }
		label = func(i int) string { return schema.MonthName(i + 1) }
	default:
		return nil, fmt.Errorf("%w: %q", schema.ErrUnsupportedUnit, unit)
	}

	counts := make([]int, size)
	for _, rec := range a.commits {
		counts[index(rec.Timestamp)]++
	}

	buckets := []schema.FrequencyBucket{}
	for i, count := range counts {
		if count == 0 && !a.dense {
			continue
		}
		buckets = append(buckets, schema.FrequencyBucket{Bucket: label(i), Count: count})
	}
	return buckets, nil
}

// truncatePeriod floors a timestamp to the start of its period. Weeks
// start on Monday.
func truncatePeriod(t time.Time, granularity schema.Granularity) time.Time {
	switch granularity {
	case schema.DayGranularity:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case schema.WeekGranularity:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, time.UTC)
	case schema.MonthGranularity:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default: // year
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

// nextPeriod advances a truncated timestamp by one period.
func nextPeriod(t time.Time, granularity schema.Granularity) time.Time {
	switch granularity {
	case schema.DayGranularity:
		return t.AddDate(0, 0, 1)
	case schema.WeekGranularity:
		return t.AddDate(0, 0, 7)
	case schema.MonthGranularity:
		return t.AddDate(0, 1, 0)
	default: // year
		return t.AddDate(1, 0, 0)
	}
}

// periodLabel formats a truncated timestamp for its granularity.
func periodLabel(t time.Time, granularity schema.Granularity) string {
	switch granularity {
	case schema.DayGranularity, schema.WeekGranularity:
		return t.Format("2006-01-02")
	case schema.MonthGranularity:
		return t.Format("2006-01")
	default: // year
		return t.Format("2006")
	}
}
