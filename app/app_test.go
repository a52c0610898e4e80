package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnkushinDaniil/fourier/entity"
	"github.com/AnkushinDaniil/fourier/entity/format"
	"github.com/AnkushinDaniil/fourier/entity/kind"
	"github.com/AnkushinDaniil/fourier/series"
)

func newTestModel() *entity.Model {
	return entity.NewModel(series.DefaultGrid())
}

func TestRunHTML(t *testing.T) {
	m := newTestModel()
	m.SetKind(kind.Sawtooth)
	out := filepath.Join(t.TempDir(), "chart.html")

	if err := New(out, format.HTML, DefaultConfig().Chart, m).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	html := string(data)
	for _, want := range []string{"echarts", "Fourier Series: Sawtooth Wave (5 terms)", "Spectrum"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output does not contain %q", want)
		}
	}
}

func TestRunCSV(t *testing.T) {
	m := newTestModel()
	out := filepath.Join(t.TempDir(), "samples.csv")

	if err := New(out, format.Csv, DefaultConfig().Chart, m).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(rows) != len(m.Grid())+1 {
		t.Fatalf("rows = %d, want %d", len(rows), len(m.Grid())+1)
	}
	if rows[0][0] != "x" || rows[0][1] != "y" {
		t.Fatalf("header = %v", rows[0])
	}
}

func TestRunTxt(t *testing.T) {
	m := newTestModel()
	out := filepath.Join(t.TempDir(), "plot.txt")

	if err := New(out, format.Txt, DefaultConfig().Chart, m).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "Square Wave (5 terms)") {
		t.Fatalf("plot caption missing:\n%s", data)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := filepath.Join(t.TempDir(), "never.html")
	if err := New(out, format.HTML, DefaultConfig().Chart, newTestModel()).Run(ctx); err == nil {
		t.Fatal("expected error on cancelled context")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output created despite cancellation: %v", err)
	}
}

func TestRunBadPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "chart.html")
	if err := New(out, format.HTML, DefaultConfig().Chart, newTestModel()).Run(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestSpectrumAxisMapsHarmonics(t *testing.T) {
	m := newTestModel()
	m.SetKind(kind.Sawtooth)
	m.SetFrequency(1)
	m.SetTerms(1)

	mags := series.Spectrum(m.Output())[:spectrumBins]
	axis := spectrumAxis(m.Grid(), len(mags))
	peak := 0
	for i, v := range mags {
		if v > mags[peak] {
			peak = i
		}
	}
	if math.Abs(axis[peak]-1) > 0.01 {
		t.Fatalf("fundamental at %v cycles per 2π, want 1", axis[peak])
	}

	// bin 6 of a 4π window is the third harmonic
	if math.Abs(axis[6]-3) > 0.01 {
		t.Fatalf("axis[6] = %v, want ≈3", axis[6])
	}
	if got := spectrumAxis(nil, 3); len(got) != 3 || got[2] != 0 {
		t.Fatalf("spectrumAxis(nil) = %v", got)
	}
}

func TestYLimit(t *testing.T) {
	tests := []struct {
		in   []float64
		want float64
	}{
		{nil, 2},
		{[]float64{-1.1, 1.9}, 2},
		{[]float64{-3.4, 1}, 4},
		{[]float64{0, 2.2}, 3},
	}
	for _, tt := range tests {
		if got := yLimit(tt.in); got != tt.want {
			t.Fatalf("yLimit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf)
	if !strings.HasPrefix(buf.String(), "Fourier Series Visualizer\nControls:\n") {
		t.Fatalf("unexpected banner: %q", buf.String())
	}
}
