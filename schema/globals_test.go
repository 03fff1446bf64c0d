package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopWordsContainsDomainExclusions(t *testing.T) {
	words := StopWords()
	for _, w := range []string{"fix", "bug", "issue", "update", "add", "remove"} {
		_, ok := words[w]
		assert.True(t, ok, "expected %q in stop-word set", w)
	}
}

func TestStopWordsContainsEnglishWords(t *testing.T) {
	words := StopWords()
	for _, w := range []string{"the", "and", "in", "of"} {
		_, ok := words[w]
		assert.True(t, ok, "expected %q in stop-word set", w)
	}

	_, ok := words["login"]
	assert.False(t, ok, "content words must not be filtered")
}

func TestStopWordsReturnsSameTable(t *testing.T) {
	assert.Equal(t, len(StopWords()), len(StopWords()))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Monday", DayName(0))
	assert.Equal(t, "Sunday", DayName(6))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "December", MonthName(12))
}
