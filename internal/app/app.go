// Package app orchestrates the two batch pipelines: scrape and analyze.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"titulares/internal/analyze"
	"titulares/internal/config"
	"titulares/internal/fetch"
	"titulares/internal/report"
	"titulares/internal/scrape"
	"titulares/internal/store"
	"titulares/internal/viz"
)

// App wires configuration into the pipelines.
type App struct {
	cfg config.Config
	// Out receives the human-readable record listing.
	Out io.Writer
}

// New builds an App from validated configuration.
func New(cfg config.Config, out io.Writer) *App {
	return &App{cfg: cfg, Out: out}
}

// Scrape runs the extraction pipeline: fetch, extract, print, persist.
// Extraction failures degrade to an empty result with a logged message;
// they do not propagate.
func (a *App) Scrape(ctx context.Context) error {
	log.Info().Str("url", a.cfg.Source.URL).Msg("scraping listing page")

	s := &scrape.Scraper{
		Client: &fetch.Client{
			UserAgent: a.cfg.Source.UserAgent,
			Timeout:   a.cfg.Source.Timeout(),
		},
		URL:              a.cfg.Source.URL,
		TitleSelector:    a.cfg.Source.TitleSelector,
		SubtitleSelector: a.cfg.Source.SubtitleSelector,
	}

	records, err := s.Extract(ctx)
	if err != nil {
		log.Error().Err(err).Msg("extraction failed")
		records = nil
	}

	a.printRecords(records)

	if err := store.Save(records, a.cfg.Storage.CSVPath); err != nil {
		if errors.Is(err, store.ErrNoRecords) {
			log.Info().Msg("no hay datos para guardar")
			return nil
		}
		return fmt.Errorf("save records: %w", err)
	}
	log.Info().Int("records", len(records)).Str("path", a.cfg.Storage.CSVPath).Msg("datos guardados")
	return nil
}

// printRecords writes the numbered record listing to a.Out.
func (a *App) printRecords(records []scrape.Record) {
	if len(records) == 0 {
		fmt.Fprintln(a.Out, "No se encontraron noticias")
		return
	}
	fmt.Fprintf(a.Out, "\n=== ÚLTIMAS NOTICIAS ===\n\n")
	for i, r := range records {
		fmt.Fprintf(a.Out, "NOTICIA %d:\n", i+1)
		fmt.Fprintf(a.Out, "Título: %s\n", r.Title)
		if r.Subtitle != "" {
			fmt.Fprintf(a.Out, "Subtítulo: %s\n", r.Subtitle)
		}
		fmt.Fprintln(a.Out, strings.Repeat("-", 50))
	}
}

// Analyze runs the analysis pipeline: load the CSV, derive the table, render
// every chart, and assemble the PDF report. Loading the CSV is the one fatal
// path; each chart failure is logged and skipped.
func (a *App) Analyze(ctx context.Context) error {
	rows, err := store.Load(a.cfg.Storage.CSVPath)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	table := analyze.NewTable(rows)
	log.Info().Int("records", len(table.Items)).Msg("datos cargados")

	r := &viz.Renderer{Dir: a.cfg.Charts.Dir, FontFile: a.cfg.Charts.FontFile}
	if err := r.EnsureDir(); err != nil {
		return err
	}

	corpus := table.Corpus()
	counts := analyze.WordCounts(corpus)

	var artifacts []string
	collect := func(kind, path string, err error) {
		if err != nil {
			log.Warn().Err(err).Str("chart", kind).Msg("chart failed; skipping")
			return
		}
		log.Info().Str("chart", kind).Str("path", path).Msg("chart generado")
		artifacts = append(artifacts, path)
	}

	path, err := r.WordCloud(counts, a.cfg.Charts.MaxCloudWords)
	collect("wordcloud", path, err)

	path, err = r.LengthHistogram(table.Lengths(), table.MeanLength())
	collect("longitud_titulos", path, err)

	path, err = r.TopWords(analyze.TopWords(corpus, a.cfg.Charts.TopWords))
	collect("top_palabras", path, err)

	path, err = r.SentimentHistogram(table.Sentiments())
	collect("sentimiento", path, err)

	persons, places, err := table.Entities()
	if err != nil {
		log.Warn().Err(err).Msg("entity extraction failed; skipping entity charts")
	} else {
		if len(persons) > 0 {
			path, err = r.PersonBars(persons)
			collect("personas", path, err)
		}
		if len(places) > 0 {
			path, err = r.PlaceBars(places)
			collect("lugares", path, err)
		}
	}

	if hours, ok := table.HourCounts(); ok {
		path, err = r.HourHistogram(hours)
		collect("distribucion_horas", path, err)
	} else {
		log.Warn().Msg("no hay datos temporales para analizar")
	}

	if err := report.Build(artifacts, report.Params{
		Title:       a.cfg.Report.Title,
		GeneratedAt: time.Now(),
		RecordCount: len(table.Items),
		OutPath:     a.cfg.Report.Path,
	}); err != nil {
		if errors.Is(err, report.ErrNoArtifacts) {
			log.Warn().Msg("no charts produced; report skipped")
			return nil
		}
		return fmt.Errorf("build report: %w", err)
	}

	log.Info().Int("charts", len(artifacts)).Str("report", a.cfg.Report.Path).Msg("análisis completado")
	return nil
}
