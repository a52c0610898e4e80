package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fourier/entity"
	"github.com/AnkushinDaniil/fourier/entity/format"
)

// App renders the model's current output to a file.
type App struct {
	Output string
	Format format.Format
	Chart  ChartConfig
	Model  *entity.Model
}

func New(output string, f format.Format, chart ChartConfig, model *entity.Model) *App {
	return &App{
		Output: output,
		Format: f,
		Chart:  chart,
		Model:  model,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	p := a.Model.Params()
	log.WithFields(log.Fields{
		"output":    a.Output,
		"format":    a.Format,
		"kind":      p.Kind,
		"terms":     p.Terms,
		"frequency": p.Frequency,
		"amplitude": p.Amplitude,
	}).Debug("App started")

	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := a.render(f); err != nil {
		return fmt.Errorf("failed to render %s: %w", a.Output, err)
	}
	log.WithFields(log.Fields{
		"time":  time.Since(renderTime),
		"title": a.Model.Title(),
	}).Info("Chart rendered and saved")

	return nil
}

func (a *App) render(w io.Writer) error {
	switch a.Format {
	case format.HTML:
		return newPage(a.Model, a.Chart).Render(w)
	case format.Csv:
		return writeCSV(w, a.Model.Grid(), a.Model.Output())
	case format.Txt:
		return writePlot(w, a.Model)
	default:
		return fmt.Errorf("unsupported format: %d", a.Format)
	}
}

func writeCSV(w io.Writer, grid, output []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range grid {
		row := []string{
			strconv.FormatFloat(grid[i], 'g', -1, 64),
			strconv.FormatFloat(output[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePlot(w io.Writer, m *entity.Model) error {
	plot := asciigraph.Plot(m.Output(),
		asciigraph.Height(20),
		asciigraph.Width(100),
		asciigraph.LowerBound(-2),
		asciigraph.UpperBound(2),
		asciigraph.Caption("Fourier Series: "+m.Title()),
	)
	_, err := fmt.Fprintln(w, plot)
	return err
}

// Banner prints the usage text shown at startup.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "Fourier Series Visualizer")
	fmt.Fprintln(w, "Controls:")
	fmt.Fprintln(w, "- Use sliders to adjust terms, frequency, and amplitude")
	fmt.Fprintln(w, "- Use radio buttons to select different wave types")
	fmt.Fprintln(w, "- Click 'Populate' to populate the series")
	fmt.Fprintln(w, "- Click 'Reset' to return to default values")
	fmt.Fprintln(w)
}
