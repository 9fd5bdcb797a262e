// Package store persists extracted records to the CSV handoff file and
// loads it back for analysis. The CSV on disk is the only integration
// point between the scrape and analyze pipelines.
package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"titulares/internal/scrape"
)

// TimeFormat is the on-disk timestamp layout in the fecha_extraccion column.
const TimeFormat = "2006-01-02 15:04:05"

// ErrNoRecords signals that there was nothing to persist. Callers report it
// and carry on; it is not a failure.
var ErrNoRecords = errors.New("no records to save")

// Row mirrors one CSV line. Field order matches the persisted column order.
type Row struct {
	Titulo          string `csv:"titulo"`
	Subtitulo       string `csv:"subtitulo"`
	FechaExtraccion string `csv:"fecha_extraccion"`
}

// Save overwrites path with the records as UTF-8 CSV, header row included.
// An empty record set returns ErrNoRecords without touching the file.
func Save(records []scrape.Record, path string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{
			Titulo:          r.Title,
			Subtitulo:       r.Subtitle,
			FechaExtraccion: r.ExtractedAt.Format(TimeFormat),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Load reads the CSV back. A missing or malformed file is an error; a
// missing fecha_extraccion column is tolerated and leaves the field empty.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
