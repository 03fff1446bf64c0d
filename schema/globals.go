package schema

import "sync"

// englishStopWords is a standard English stop-word list, matching the
// set commonly shipped by NLP toolkits.
var englishStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "s", "t", "can", "will", "just", "don", "should",
	"now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren",
	"couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn", "ma",
	"mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren",
	"won", "wouldn",
}

// domainStopWords are commit-message words that carry no signal for
// keyword reporting because nearly every repository uses them.
var domainStopWords = []string{"fix", "bug", "issue", "update", "add", "remove"}

// dayNames labels day-of-week buckets, Monday first.
var dayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// monthNames labels month buckets, January first.
var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	stopWordSet  map[string]struct{}
	stopWordOnce sync.Once
)

// StopWords returns the process-wide stop-word set: the standard English
// list plus the domain exclusions. Built once, then shared read-only.
func StopWords() map[string]struct{} {
	stopWordOnce.Do(func() {
		stopWordSet = make(map[string]struct{}, len(englishStopWords)+len(domainStopWords))
		for _, w := range englishStopWords {
			stopWordSet[w] = struct{}{}
		}
		for _, w := range domainStopWords {
			stopWordSet[w] = struct{}{}
		}
	})
	return stopWordSet
}

// DayName returns the label for a day-of-week bucket, with Monday at 0.
func DayName(idx int) string {
	return dayNames[idx]
}

// MonthName returns the label for a month bucket in the 1-12 range.
func MonthName(month int) string {
	return monthNames[month-1]
}
