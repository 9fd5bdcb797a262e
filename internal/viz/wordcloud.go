package viz

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"sort"

	"github.com/psykhi/wordclouds"
)

// WordCloud renders a frequency-weighted cloud of the corpus tokens. The
// cloud needs a TTF font on disk; a missing font fails this one artifact,
// not the batch.
func (r *Renderer) WordCloud(counts map[string]int, maxWords int) (string, error) {
	if len(counts) == 0 {
		return "", ErrNoData
	}
	if _, err := os.Stat(r.FontFile); err != nil {
		return "", fmt.Errorf("word cloud font %q: %w", r.FontFile, err)
	}

	words := capWordList(counts, maxWords)

	cloud := wordclouds.NewWordcloud(words,
		wordclouds.FontFile(r.FontFile),
		wordclouds.FontMaxSize(110),
		wordclouds.FontMinSize(12),
		wordclouds.Width(1200),
		wordclouds.Height(600),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Colors([]color.Color{colBlue, colGreen, colPurple, colTeal, colOrange}),
	)
	img := cloud.Draw()

	path := r.artifactPath("wordcloud")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create word cloud file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode word cloud: %w", err)
	}
	return path, nil
}

// capWordList keeps the maxWords most frequent tokens.
func capWordList(counts map[string]int, maxWords int) map[string]int {
	if maxWords <= 0 || len(counts) <= maxWords {
		return counts
	}
	type entry struct {
		word  string
		count int
	}
	all := make([]entry, 0, len(counts))
	for w, c := range counts {
		all = append(all, entry{word: w, count: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].word < all[j].word
	})
	kept := make(map[string]int, maxWords)
	for _, e := range all[:maxWords] {
		kept[e.word] = e.count
	}
	return kept
}
