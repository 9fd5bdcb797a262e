// Package report assembles the produced chart artifacts into a single PDF.
package report

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ErrNoArtifacts signals that no chart survived to be bundled.
var ErrNoArtifacts = errors.New("no artifacts to bundle")

// imageWidthMM is the fixed embed width for every chart page.
const imageWidthMM = 180

// Params carries everything the cover page states about the run.
type Params struct {
	Title       string
	GeneratedAt time.Time
	RecordCount int
	OutPath     string
}

// Build writes a PDF with a cover page followed by one page per artifact,
// embedding each image at a fixed width. The output path is overwritten on
// every run. Artifacts that vanished between rendering and assembly are
// skipped rather than failing the document.
func Build(artifacts []string, p Params) error {
	if len(artifacts) == 0 {
		return ErrNoArtifacts
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	// Core fonts are cp1252; translate the UTF-8 cover text.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Cover page
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(p.Title), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 10, tr(fmt.Sprintf(
		"Fecha de generación: %s\nTotal noticias analizadas: %d",
		p.GeneratedAt.Format("2006-01-02 15:04:05"), p.RecordCount,
	)), "", "L", false)

	for _, img := range artifacts {
		if _, err := os.Stat(img); err != nil {
			continue
		}
		pdf.AddPage()
		pdf.ImageOptions(img, 10, 10, imageWidthMM, 0, false,
			gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
	}

	if err := pdf.OutputFileAndClose(p.OutPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
