package analyze

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// topEntities caps each entity bucket.
const topEntities = 10

// Entities runs named-entity recognition over every title and buckets the
// mentions into persons and places (prose tags places as GPE), returning the
// top 10 of each by frequency. Either slice may be empty.
func (t *Table) Entities() (persons, places []WordCount, err error) {
	personCounts := make(map[string]int)
	placeCounts := make(map[string]int)

	for _, it := range t.Items {
		doc, derr := prose.NewDocument(it.Title)
		if derr != nil {
			return nil, nil, fmt.Errorf("entity tagging: %w", derr)
		}
		for _, ent := range doc.Entities() {
			switch ent.Label {
			case "PERSON":
				personCounts[ent.Text]++
			case "GPE":
				placeCounts[ent.Text]++
			}
		}
	}

	return topCounts(personCounts, topEntities), topCounts(placeCounts, topEntities), nil
}
