// Package analysis computes word-frequency and descriptive summaries over a
// user's journal entries. Everything here is pure and deterministic; callers
// fetch the owner's entries first and hand them in.
package analysis

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// Categories is the fixed set of journal categories.
var Categories = []string{"Personal", "Work", "Travel", "Health", "Social"}

// Uncategorized is where entries with an unrecognized or missing category
// land in summaries.
const Uncategorized = "Uncategorized"

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// topWords caps the word-frequency ranking.
const topWords = 50

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "to": {},
	"of": {}, "a": {}, "for": {}, "on": {}, "with": {},
}

// Tokenize lowercases text, strips punctuation and other non-word characters,
// and splits on whitespace. Empty or whitespace-only input yields no tokens.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, text)
	return strings.Fields(cleaned)
}

// WordCount is one ranked word-frequency result.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequency tokenizes the content of all entries, drops stop words, and
// returns the 50 most frequent words by descending count. Ties keep the order
// in which the words were first encountered.
func WordFrequency(entries []models.JournalEntry) []WordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, entry := range entries {
		for _, word := range Tokenize(entry.Content) {
			if _, skip := stopWords[word]; skip {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	ranked := make([]WordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, WordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topWords {
		ranked = ranked[:topWords]
	}
	return ranked
}

// MonthCount is the number of entries in one (month, year) bucket.
type MonthCount struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Count int    `json:"count"`
}

// DayCount is a per-calendar-day count (entries or words).
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Summary is the descriptive report over one owner's entries. All date
// buckets are keyed on date_of_entry, never created_at.
type Summary struct {
	CategoryDistribution map[string]int     `json:"category_distribution"`
	MonthlyCounts        []MonthCount       `json:"monthly_counts"`
	DailyTrend           []DayCount         `json:"daily_trend"`
	WordCountTrend       []DayCount         `json:"word_count_trend"`
	EntryLengthAverages  map[string]float64 `json:"entry_length_averages"`
}

// Summarize computes the category distribution (fixed categories zero-filled),
// monthly counts, per-day entry and word-count trends, and per-category mean
// entry length. Zero entries yield zero-filled categories and empty lists.
func Summarize(entries []models.JournalEntry) Summary {
	distribution := make(map[string]int, len(Categories))
	for _, category := range Categories {
		distribution[category] = 0
	}

	type monthKey struct {
		year  int
		month int
	}
	monthly := make(map[monthKey]int)
	daily := make(map[string]int)
	dailyWords := make(map[string]int)
	categoryWords := make(map[string]int)
	categoryEntries := make(map[string]int)

	for _, entry := range entries {
		category := entry.Category
		if !ValidCategory(category) {
			category = Uncategorized
		}
		distribution[category]++

		day := entry.DateOfEntry.Format("2006-01-02")
		words := len(strings.Fields(entry.Content))

		monthly[monthKey{year: entry.DateOfEntry.Year(), month: int(entry.DateOfEntry.Month())}]++
		daily[day]++
		dailyWords[day] += words
		categoryWords[category] += words
		categoryEntries[category]++
	}

	monthKeys := make([]monthKey, 0, len(monthly))
	for key := range monthly {
		monthKeys = append(monthKeys, key)
	}
	sort.Slice(monthKeys, func(i, j int) bool {
		if monthKeys[i].year != monthKeys[j].year {
			return monthKeys[i].year < monthKeys[j].year
		}
		return monthKeys[i].month < monthKeys[j].month
	})
	monthlyCounts := make([]MonthCount, 0, len(monthKeys))
	for _, key := range monthKeys {
		monthlyCounts = append(monthlyCounts, MonthCount{
			Month: time.Month(key.month).String(),
			Year:  key.year,
			Count: monthly[key],
		})
	}

	averages := make(map[string]float64, len(categoryEntries))
	for category, n := range categoryEntries {
		averages[category] = float64(categoryWords[category]) / float64(n)
	}

	return Summary{
		CategoryDistribution: distribution,
		MonthlyCounts:        monthlyCounts,
		DailyTrend:           sortedDayCounts(daily),
		WordCountTrend:       sortedDayCounts(dailyWords),
		EntryLengthAverages:  averages,
	}
}

func sortedDayCounts(buckets map[string]int) []DayCount {
	out := make([]DayCount, 0, len(buckets))
	for date, count := range buckets {
		out = append(out, DayCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
