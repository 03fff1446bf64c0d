package core

import (
	"testing"
	"time"

	"github.com/huangsam/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitsAt builds a minimal collection with one commit per timestamp.
func commitsAt(times ...time.Time) schema.CommitCollection {
	commits := make(schema.CommitCollection, 0, len(times))
	for i, t := range times {
		commits = append(commits, schema.CommitRecord{
			SHA:       string(rune('a' + i)),
			Timestamp: t,
		})
	}
	return commits
}

func TestFrequencyByPeriodDay(t *testing.T) {
	a := NewAnalyzer(commitsAt(
		time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 23, 59, 59, 0, time.UTC),
		time.Date(2023, 1, 3, 9, 0, 0, 0, time.UTC),
	), false)

	buckets, err := a.FrequencyByPeriod(schema.DayGranularity)
	require.NoError(t, err)
	assert.Equal(t, []schema.FrequencyBucket{
		{Bucket: "2023-01-01", Count: 2},
		{Bucket: "2023-01-03", Count: 1},
	}, buckets)
}

func TestFrequencyByPeriodDenseFillsGaps(t *testing.T) {
	a := NewAnalyzer(commitsAt(
		time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 3, 9, 0, 0, 0, time.UTC),
	), true)

	buckets, err := a.FrequencyByPeriod(schema.DayGranularity)
	require.NoError(t, err)
	assert.Equal(t, []schema.FrequencyBucket{
		{Bucket: "2023-01-01", Count: 1},
		{Bucket: "2023-01-02", Count: 0},
		{Bucket: "2023-01-03", Count: 1},
	}, buckets)
}

func TestFrequencyByPeriodWeekStartsMonday(t *testing.T) {
	// 2023-01-04 is a Wednesday; its week starts Monday 2023-01-02.
	// 2023-01-08 is the Sunday of the same week.
	a := NewAnalyzer(commitsAt(
		time.Date(2023, 1, 4, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 8, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), // next Monday
	), false)

	buckets, err := a.FrequencyByPeriod(schema.WeekGranularity)
	require.NoError(t, err)
	assert.Equal(t, []schema.FrequencyBucket{
		{Bucket: "2023-01-02", Count: 2},
		{Bucket: "2023-01-09", Count: 1},
	}, buckets)
}

func TestFrequencyByPeriodMonthAndYear(t *testing.T) {
	a := NewAnalyzer(commitsAt(
		time.Date(2022, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 1, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 15, 1, 0, 0, 0, time.UTC),
	), false)

	months, err := a.FrequencyByPeriod(schema.MonthGranularity)
	require.NoError(t, err)
	assert.Equal(t, []schema.FrequencyBucket{
		{Bucket: "2022-12", Count: 1},
		{Bucket: "2023-01", Count: 2},
	}, months)

	years, err := a.FrequencyByPeriod(schema.YearGranularity)
	require.NoError(t, err)
	assert.Equal(t, []schema.FrequencyBucket{
		{Bucket: "2022", Count: 1},
		{Bucket: "2023", Count: 2},
	}, years)
}

func TestFrequencyBucketCountsSumToCollectionSize(t *testing.T) {
	commits := commitsAt(
		time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC),
		time.Date(2021, 7, 2, 18, 0, 0, 0, time.UTC),
		time.Date(2022, 11, 30, 6, 30, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
	)
	a := NewAnalyzer(commits, false)

	for _, g := range []schema.Granularity{
		schema.DayGranularity, schema.WeekGranularity,
		schema.MonthGranularity, schema.YearGranularity,
	} {
		buckets, err := a.FrequencyByPeriod(g)
		require.NoError(t, err)
		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		assert.Equal(t, len(commits), total, "granularity %s", g)
	}
}

func TestFrequencyByPeriodEmptyCollection(t *testing.T) {
	a := NewAnalyzer(schema.CommitCollection{}, false)

	buckets, err := a.FrequencyByPeriod(schema.MonthGranularity)
	assert.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestFrequencyByPeriodUnsupportedGranularity(t *testing.T) {
	a := NewAnalyzer(schema.CommitCollection{}, false)

	_, err := a.FrequencyByPeriod(schema.Granularity("decade"))
	assert.ErrorIs(t, err, schema.ErrUnsupportedUnit)
}

func TestTimeDistributionHour(t *testing.T) {
	a := NewAnalyzer(commitsAt(
		time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 2, 9, 30, 0, 0, time.UTC),
		time.Date(2023, 1, 3, 14, 45, 0, 0, time.UTC),
	), false)

	buckets, err := a.TimeDistribution(schema.HourUnit)
	require.NoError(t, err)
	assert.Equal(t, []schema.FrequencyBucket{
		{Bucket: "9", Count: 2},
		{Bucket: "14", Count: 1},
	}, buckets)
}

func TestTimeDistributionDayOfWeek(t *testing.T) {
	a := NewAnalyzer(commitsAt(
		time.Date(2023, 1, 2, 9, 0, 0, 0, time.UTC),  // Monday
		time.Date(2023, 1, 8, 9, 0, 0, 0, time.UTC),  // Sunday
		time.Date(2023, 1, 9, 15, 0, 0, 0, time.UTC), // Monday
	), false)

	buckets, err := a.TimeDistribution(schema.DayOfWeekUnit)
	require.NoError(t, err)
	assert.Equal(t, []schema.FrequencyBucket{
		{Bucket: "Monday", Count: 2},
		{Bucket: "Sunday", Count: 1},
	}, buckets)
}

func TestTimeDistributionMonth(t *testing.T) {
	a := NewAnalyzer(commitsAt(
		time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 24, 9, 0, 0, 0, time.UTC),
	), false)

	buckets, err := a.TimeDistribution(schema.MonthUnit)
	require.NoError(t, err)
	assert.Equal(t, []schema.FrequencyBucket{
		{Bucket: "March", Count: 2},
		{Bucket: "December", Count: 1},
	}, buckets)
}

func TestTimeDistributionDenseKeepsZeroBuckets(t *testing.T) {
	a := NewAnalyzer(commitsAt(time.Date(2023, 1, 2, 9, 0, 0, 0, time.UTC)), true)

	buckets, err := a.TimeDistribution(schema.DayOfWeekUnit)
	require.NoError(t, err)
	require.Len(t, buckets, 7)
	assert.Equal(t, schema.FrequencyBucket{Bucket: "Monday", Count: 1}, buckets[0])
	assert.Equal(t, schema.FrequencyBucket{Bucket: "Sunday", Count: 0}, buckets[6])
}

func TestTimeDistributionUnsupportedUnit(t *testing.T) {
	a := NewAnalyzer(schema.CommitCollection{}, false)

	_, err := a.TimeDistribution(schema.TimeUnit("century"))
	assert.ErrorIs(t, err, schema.ErrUnsupportedUnit)
}
