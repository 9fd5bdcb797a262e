package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"titulares/internal/scrape"
)

func TestSave_EmptySkipsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noticias.csv")
	err := Save(nil, path)
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file written, stat returned %v", statErr)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noticias.csv")
	when := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	records := []scrape.Record{
		{Title: "Título con acentos, y coma", Subtitle: "un subtítulo", ExtractedAt: when},
		{Title: "Segundo", Subtitle: "", ExtractedAt: when},
	}

	if err := Save(records, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Titulo != records[0].Title || rows[0].Subtitulo != records[0].Subtitle {
		t.Fatalf("row 0 mismatch: %+v", rows[0])
	}
	if rows[0].FechaExtraccion != "2025-03-01 09:30:00" {
		t.Fatalf("unexpected timestamp format: %q", rows[0].FechaExtraccion)
	}
	if rows[1].Subtitulo != "" {
		t.Fatalf("expected empty subtitle preserved, got %q", rows[1].Subtitulo)
	}
}

func TestSave_HeaderAndColumnOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noticias.csv")
	records := []scrape.Record{{Title: "t", Subtitle: "s", ExtractedAt: time.Now()}}
	if err := Save(records, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	first := strings.SplitN(string(data), "\n", 2)[0]
	if strings.TrimSpace(first) != "titulo,subtitulo,fecha_extraccion" {
		t.Fatalf("unexpected header: %q", first)
	}
}

func TestSave_OverwritesPriorRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noticias.csv")
	old := []scrape.Record{
		{Title: "vieja 1", ExtractedAt: time.Now()},
		{Title: "vieja 2", ExtractedAt: time.Now()},
	}
	if err := Save(old, path); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := Save([]scrape.Record{{Title: "nueva", ExtractedAt: time.Now()}}, path); err != nil {
		t.Fatalf("second save: %v", err)
	}

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 || rows[0].Titulo != "nueva" {
		t.Fatalf("expected full overwrite, got %+v", rows)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_MissingTimestampColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noticias.csv")
	body := "titulo,subtitulo\nuna noticia,su detalle\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("load should tolerate a missing fecha_extraccion column: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].FechaExtraccion != "" {
		t.Fatalf("expected empty timestamp, got %q", rows[0].FechaExtraccion)
	}
}
