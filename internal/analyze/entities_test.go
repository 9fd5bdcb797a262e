package analyze

import (
	"testing"

	"titulares/internal/store"
)

func TestEntities_BucketsAndCaps(t *testing.T) {
	rows := []store.Row{
		{Titulo: "Barack Obama visited Paris on Monday"},
		{Titulo: "Barack Obama spoke about France"},
		{Titulo: "No entities here at all"},
	}
	persons, places, err := NewTable(rows).Entities()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(persons) > topEntities || len(places) > topEntities {
		t.Fatalf("buckets exceed cap: %d persons, %d places", len(persons), len(places))
	}
	for i := 1; i < len(persons); i++ {
		if persons[i].Count > persons[i-1].Count {
			t.Fatalf("persons not sorted descending: %+v", persons)
		}
	}
}

func TestEntities_EmptyTable(t *testing.T) {
	persons, places, err := NewTable(nil).Entities()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(persons) != 0 || len(places) != 0 {
		t.Fatalf("expected empty buckets, got %d/%d", len(persons), len(places))
	}
}
