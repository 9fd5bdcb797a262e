package analyze

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Polarity scores one title with the VADER compound polarity in [-1, 1].
func Polarity(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

// Sentiments returns the per-title polarity scores in row order.
func (t *Table) Sentiments() []float64 {
	out := make([]float64, 0, len(t.Items))
	for _, it := range t.Items {
		out = append(out, Polarity(it.Title))
	}
	return out
}
