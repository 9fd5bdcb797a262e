// Package analyze derives the analysis table and text statistics that feed
// the visualization suite.
package analyze

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"titulares/internal/store"
)

// Stopwords is the closed list of common Spanish words excluded from the
// frequency-based visuals.
var Stopwords = map[string]struct{}{
	"de": {}, "la": {}, "el": {}, "en": {}, "y": {}, "a": {},
	"los": {}, "las": {}, "del": {}, "que": {}, "con": {}, "por": {}, "para": {},
}

// MinTokenLen drops short tokens regardless of frequency; tokens of this
// length or less are excluded.
const MinTokenLen = 3

var (
	rePunct = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	reToken = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// Item is one analysis row: the persisted record plus derived columns.
type Item struct {
	Title    string
	Subtitle string
	// Clean is the normalized title: lowercased with punctuation stripped.
	Clean  string
	Length int
	// ExtractedAt is nil when the timestamp column is absent or unparseable.
	ExtractedAt *time.Time
}

// Table is the loaded CSV with derived columns, rebuilt fresh on every
// analyzer run and never persisted back.
type Table struct {
	Items []Item
}

// NewTable derives the analysis columns from loaded CSV rows.
func NewTable(rows []store.Row) *Table {
	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		it := Item{
			Title:    r.Titulo,
			Subtitle: r.Subtitulo,
			Clean:    Normalize(r.Titulo),
			Length:   utf8.RuneCountInString(r.Titulo),
		}
		if r.FechaExtraccion != "" {
			if ts, err := time.Parse(store.TimeFormat, r.FechaExtraccion); err == nil {
				it.ExtractedAt = &ts
			}
		}
		items = append(items, it)
	}
	return &Table{Items: items}
}

// Normalize lowercases a title and strips every rune that is not a letter,
// digit, underscore, or whitespace. Accented letters survive.
func Normalize(title string) string {
	return rePunct.ReplaceAllString(strings.ToLower(title), "")
}

// Corpus joins all normalized titles with single spaces; it is the input to
// the frequency-based visuals.
func (t *Table) Corpus() string {
	parts := make([]string, 0, len(t.Items))
	for _, it := range t.Items {
		parts = append(parts, it.Clean)
	}
	return strings.Join(parts, " ")
}

// Lengths returns the title character counts in row order.
func (t *Table) Lengths() []float64 {
	out := make([]float64, 0, len(t.Items))
	for _, it := range t.Items {
		out = append(out, float64(it.Length))
	}
	return out
}

// MeanLength is the arithmetic mean of all title lengths, 0 for an empty table.
func (t *Table) MeanLength() float64 {
	if len(t.Items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range t.Items {
		sum += float64(it.Length)
	}
	return sum / float64(len(t.Items))
}

// HourCounts buckets parsed extraction timestamps by hour of day. The
// second return reports whether any timestamp was available at all.
func (t *Table) HourCounts() ([24]int, bool) {
	var counts [24]int
	any := false
	for _, it := range t.Items {
		if it.ExtractedAt == nil {
			continue
		}
		counts[it.ExtractedAt.Hour()]++
		any = true
	}
	return counts, any
}

// WordCount is a token with its corpus frequency.
type WordCount struct {
	Word  string
	Count int
}

// WordCounts tokenizes a corpus on word boundaries and counts tokens,
// excluding the stopword list and tokens of length <= MinTokenLen.
func WordCounts(corpus string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range reToken.FindAllString(corpus, -1) {
		if _, stop := Stopwords[tok]; stop {
			continue
		}
		if utf8.RuneCountInString(tok) <= MinTokenLen {
			continue
		}
		counts[tok]++
	}
	return counts
}

// TopWords returns the n most frequent tokens in descending order, ties
// broken alphabetically for stable output.
func TopWords(corpus string, n int) []WordCount {
	return topCounts(WordCounts(corpus), n)
}

func topCounts(counts map[string]int, n int) []WordCount {
	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
