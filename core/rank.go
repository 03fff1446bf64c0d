package core

import (
	"sort"
	"strings"
	"unicode"

	"github.com/huangsam/gitpulse/schema"
)

// TopContributors groups commits by author name (exact string match, no
// identity resolution across differing emails) and returns the most
// active developers, descending by commit count. Ties keep
// first-encountered order; the result is truncated to limit.
func (a *Analyzer) TopContributors(limit int) []schema.RankEntry {
	authors := make([]string, 0, len(a.commits))
	for _, rec := range a.commits {
		authors = append(authors, rec.AuthorName)
	}
	return rankOccurrences(authors, limit)
}

// MessageKeywords lowercases and tokenizes every commit message into
// alphabetic word tokens, discards stop words, and returns the most
// frequent remaining tokens descending by count. Ties keep
// first-encountered order; the result is truncated to limit.
func (a *Analyzer) MessageKeywords(limit int) []schema.RankEntry {
	stopWords := schema.StopWords()

	var tokens []string
	for _, rec := range a.commits {
		for _, w := range strings.Fields(strings.ToLower(rec.Message)) {
			w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) })
			if w == "" || !isAlphabetic(w) {
				continue // "v2", "x11" and friends carry no keyword signal
			}
			if _, skip := stopWords[w]; skip {
				continue
			}
			tokens = append(tokens, w)
		}
	}
	return rankOccurrences(tokens, limit)
}

// isAlphabetic reports whether s consists solely of letters.
func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// rankOccurrences counts an ordered occurrence stream and returns a
// ranking table: descending by count, ties broken by first-encountered
// order, truncated to limit.
func rankOccurrences(stream []string, limit int) []schema.RankEntry {
	counts := make(map[string]int)
	var order []string // unique entities, first-encounter order
	for _, entity := range stream {
		if counts[entity] == 0 {
			order = append(order, entity)
		}
		counts[entity]++
	}

	// Stable sort preserves first-encounter order among equal counts
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	entries := make([]schema.RankEntry, 0, len(order))
	for _, entity := range order {
		entries = append(entries, schema.RankEntry{Entity: entity, Count: counts[entity]})
	}
	return entries
}
