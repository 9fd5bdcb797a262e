// Package viz renders the analysis charts. Every function produces exactly
// one PNG artifact under the output directory and returns its path; a
// failure in one chart never aborts the batch, the orchestrator logs it and
// moves on.
package viz

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"titulares/internal/analyze"
)

// ErrNoData signals that a chart had nothing to draw.
var ErrNoData = errors.New("no data to plot")

// Chart palette, matching the original report colors.
var (
	colBlue   = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	colGreen  = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	colRed    = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	colOrange = color.RGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff}
	colPurple = color.RGBA{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff}
	colTeal   = color.RGBA{R: 0x1a, G: 0xbc, B: 0x9c, A: 0xff}
)

// Renderer writes timestamped chart artifacts into Dir.
type Renderer struct {
	Dir      string
	FontFile string
	// Now stamps artifact filenames; defaults to time.Now.
	Now func() time.Time
}

// EnsureDir creates the output directory if absent.
func (r *Renderer) EnsureDir() error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("create charts dir: %w", err)
	}
	return nil
}

// artifactPath builds `<kind>_<YYYYMMDD_HHMMSS>.png` under Dir so repeated
// runs never overwrite earlier artifacts.
func (r *Renderer) artifactPath(kind string) string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return filepath.Join(r.Dir, fmt.Sprintf("%s_%s.png", kind, now().Format("20060102_150405")))
}

// LengthHistogram draws the distribution of title character counts with a
// dashed vertical line at the arithmetic mean.
func (r *Renderer) LengthHistogram(lengths []float64, mean float64) (string, error) {
	if len(lengths) == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Distribución de longitud de titulares"
	p.X.Label.Text = "Cantidad de caracteres"
	p.Y.Label.Text = "Frecuencia"

	hist, err := plotter.NewHist(plotter.Values(lengths), 20)
	if err != nil {
		return "", fmt.Errorf("build histogram: %w", err)
	}
	hist.FillColor = colBlue
	p.Add(hist)

	_, _, _, ymax := hist.DataRange()
	meanLine, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: ymax}})
	if err != nil {
		return "", fmt.Errorf("build mean line: %w", err)
	}
	meanLine.LineStyle.Color = colRed
	meanLine.LineStyle.Width = vg.Points(1.5)
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(meanLine)
	p.Legend.Add(fmt.Sprintf("Media: %.1f caracteres", mean), meanLine)
	p.Legend.Top = true

	path := r.artifactPath("longitud_titulos")
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save histogram: %w", err)
	}
	return path, nil
}

// TopWords draws a horizontal bar chart of the most frequent tokens,
// highest at the top, with the count printed at the end of each bar.
func (r *Renderer) TopWords(words []analyze.WordCount) (string, error) {
	return r.horizontalBars("top_palabras", fmt.Sprintf("Top %d palabras en titulares", len(words)), words, colGreen)
}

// PersonBars draws the most mentioned persons.
func (r *Renderer) PersonBars(persons []analyze.WordCount) (string, error) {
	return r.horizontalBars("personas", "Personas más mencionadas", persons, colPurple)
}

// PlaceBars draws the most mentioned places.
func (r *Renderer) PlaceBars(places []analyze.WordCount) (string, error) {
	return r.horizontalBars("lugares", "Lugares más mencionados", places, colTeal)
}

func (r *Renderer) horizontalBars(kind, title string, entries []analyze.WordCount, barColor color.Color) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoData
	}

	// Horizontal bars draw index 0 at the bottom, so reverse the
	// descending input to put the most frequent entry on top.
	n := len(entries)
	values := make(plotter.Values, n)
	labels := make([]string, n)
	countLabels := make([]string, n)
	countXYs := make(plotter.XYs, n)
	for i, e := range entries {
		j := n - 1 - i
		values[j] = float64(e.Count)
		labels[j] = e.Word
		countLabels[j] = fmt.Sprintf("%d", e.Count)
		countXYs[j] = plotter.XY{X: float64(e.Count), Y: float64(j)}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frecuencia"

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return "", fmt.Errorf("build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(labels...)

	counts, err := plotter.NewLabels(plotter.XYLabels{XYs: countXYs, Labels: countLabels})
	if err != nil {
		return "", fmt.Errorf("build bar labels: %w", err)
	}
	p.Add(counts)

	path := r.artifactPath(kind)
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save bar chart: %w", err)
	}
	return path, nil
}

// SentimentHistogram draws the polarity distribution with dotted reference
// lines at -1, 0 and 1.
func (r *Renderer) SentimentHistogram(scores []float64) (string, error) {
	if len(scores) == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Distribución de sentimiento en titulares"
	p.X.Label.Text = "Polaridad (-1 = Negativo, 1 = Positivo)"
	p.Y.Label.Text = "Frecuencia"

	hist, err := plotter.NewHist(plotter.Values(scores), 20)
	if err != nil {
		return "", fmt.Errorf("build histogram: %w", err)
	}
	hist.FillColor = colOrange
	p.Add(hist)

	_, _, _, ymax := hist.DataRange()
	for _, x := range []float64{-1, 0, 1} {
		ref, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: ymax}})
		if err != nil {
			return "", fmt.Errorf("build reference line: %w", err)
		}
		ref.LineStyle.Color = colRed
		ref.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(3)}
		p.Add(ref)
	}
	p.X.Min, p.X.Max = -1.1, 1.1

	path := r.artifactPath("sentimiento")
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save histogram: %w", err)
	}
	return path, nil
}

// HourHistogram draws records per hour of day for the hours that carry data.
func (r *Renderer) HourHistogram(counts [24]int) (string, error) {
	values := make(plotter.Values, 0, 24)
	labels := make([]string, 0, 24)
	total := 0
	for h, c := range counts {
		if c == 0 {
			continue
		}
		values = append(values, float64(c))
		labels = append(labels, fmt.Sprintf("%02d", h))
		total += c
	}
	if total == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Distribución de noticias por hora del día"
	p.X.Label.Text = "Hora del día"
	p.Y.Label.Text = "Número de noticias"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return "", fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = colPurple
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	path := r.artifactPath("distribucion_horas")
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save bar chart: %w", err)
	}
	return path, nil
}
