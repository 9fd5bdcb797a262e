package viz

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"titulares/internal/analyze"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r := &Renderer{
		Dir: t.TempDir(),
		Now: func() time.Time { return time.Date(2025, 3, 1, 15, 4, 5, 0, time.UTC) },
	}
	if err := r.EnsureDir(); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	return r
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("artifact is empty: %s", path)
	}
}

func TestArtifactPath_EmbedsTimestamp(t *testing.T) {
	r := testRenderer(t)
	got := r.artifactPath("wordcloud")
	want := filepath.Join(r.Dir, "wordcloud_20250301_150405.png")
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	pattern := regexp.MustCompile(`^[a-z_]+_\d{8}_\d{6}\.png$`)
	if !pattern.MatchString(filepath.Base(got)) {
		t.Fatalf("artifact name %q does not match <kind>_<YYYYMMDD_HHMMSS>.png", filepath.Base(got))
	}
}

func TestLengthHistogram(t *testing.T) {
	r := testRenderer(t)
	lengths := []float64{40, 55, 61, 72, 80, 95, 61, 58}
	path, err := r.LengthHistogram(lengths, 65.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPNG(t, path)
}

func TestLengthHistogram_NoData(t *testing.T) {
	r := testRenderer(t)
	if _, err := r.LengthHistogram(nil, 0); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestTopWords(t *testing.T) {
	r := testRenderer(t)
	words := []analyze.WordCount{
		{Word: "gobierno", Count: 9},
		{Word: "economía", Count: 7},
		{Word: "elecciones", Count: 4},
	}
	path, err := r.TopWords(words)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPNG(t, path)
}

func TestEntityBars(t *testing.T) {
	r := testRenderer(t)
	persons := []analyze.WordCount{{Word: "Messi", Count: 5}, {Word: "Trump", Count: 3}}
	places := []analyze.WordCount{{Word: "Chile", Count: 4}}

	p1, err := r.PersonBars(persons)
	if err != nil {
		t.Fatalf("persons: %v", err)
	}
	assertPNG(t, p1)

	p2, err := r.PlaceBars(places)
	if err != nil {
		t.Fatalf("places: %v", err)
	}
	assertPNG(t, p2)

	if _, err := r.PersonBars(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData for empty bucket, got %v", err)
	}
}

func TestSentimentHistogram(t *testing.T) {
	r := testRenderer(t)
	scores := []float64{-0.8, -0.2, 0, 0.1, 0.4, 0.9, 0.4, -0.1}
	path, err := r.SentimentHistogram(scores)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPNG(t, path)
}

func TestHourHistogram(t *testing.T) {
	r := testRenderer(t)
	var counts [24]int
	counts[9] = 12
	counts[14] = 7
	counts[23] = 1
	path, err := r.HourHistogram(counts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPNG(t, path)

	var empty [24]int
	if _, err := r.HourHistogram(empty); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestWordCloud_MissingFont(t *testing.T) {
	r := testRenderer(t)
	r.FontFile = filepath.Join(r.Dir, "missing.ttf")
	_, err := r.WordCloud(map[string]int{"palabra": 3}, 200)
	if err == nil {
		t.Fatalf("expected error for missing font file")
	}
}

func TestWordCloud_NoData(t *testing.T) {
	r := testRenderer(t)
	if _, err := r.WordCloud(nil, 200); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestCapWordList(t *testing.T) {
	counts := map[string]int{"a1": 1, "b2": 5, "c3": 3, "d4": 4}
	kept := capWordList(counts, 2)
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept, got %d", len(kept))
	}
	if _, ok := kept["b2"]; !ok {
		t.Fatalf("most frequent token dropped: %v", kept)
	}
	if _, ok := kept["d4"]; !ok {
		t.Fatalf("second most frequent token dropped: %v", kept)
	}

	same := capWordList(counts, 10)
	if len(same) != len(counts) {
		t.Fatalf("expected untouched map when under cap")
	}
}
