package app

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/fourier/entity"
	"github.com/AnkushinDaniil/fourier/series"
)

// spectrumBins is how many low-order spectrum bins the bar chart shows.
const spectrumBins = 64

func newPage(m *entity.Model, cfg ChartConfig) *components.Page {
	page := components.NewPage()
	page.PageTitle = cfg.Title
	page.AddCharts(newLineChart(m, cfg), newSpectrumChart(m, cfg))
	return page
}

func newLineChart(m *entity.Model, cfg ChartConfig) *charts.Line {
	line := charts.NewLine()
	limit := yLimit(m.Output())

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           cfg.Width,
			Height:          cfg.Height,
			PageTitle:       cfg.Title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Fourier Series: " + m.Title(),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "fourier",
					Title: "Save as image",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f(x)",
			Type: "value",
			Show: opts.Bool(true),
			Min:  -limit,
			Max:  limit,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	x := make([]string, len(m.Grid()))
	for i, v := range m.Grid() {
		x[i] = fmt.Sprintf("%.3f", v)
	}
	line.SetXAxis(x)

	data := make([]opts.LineData, len(m.Output()))
	for i, v := range m.Output() {
		data[i] = opts.LineData{Value: v}
	}
	line.AddSeries("Fourier Series", data,
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(false),
		}),
	)
	return line
}

func newSpectrumChart(m *entity.Model, cfg ChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           cfg.Width,
			Height:          "300px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Spectrum",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "cycles per 2π",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "|X|",
			Type: "value",
		}),
	)

	mags := series.Spectrum(m.Output())
	if len(mags) > spectrumBins {
		mags = mags[:spectrumBins]
	}
	x := make([]string, len(mags))
	data := make([]opts.BarData, len(mags))
	for i, v := range spectrumAxis(m.Grid(), len(mags)) {
		x[i] = fmt.Sprintf("%.2f", v)
		data[i] = opts.BarData{Value: mags[i]}
	}
	bar.SetXAxis(x)
	bar.AddSeries("Magnitude", data)
	return bar
}

// spectrumAxis maps the first n FFT bins of a series sampled on grid to
// cycles per 2π of x, so harmonic k of a unit-frequency wave sits near k.
func spectrumAxis(grid []float64, n int) []float64 {
	axis := make([]float64, n)
	if len(grid) < 2 {
		return axis
	}
	dx := (grid[len(grid)-1] - grid[0]) / float64(len(grid)-1)
	window := dx * float64(len(grid))
	for i := range axis {
		axis[i] = float64(i) * 2 * math.Pi / window
	}
	return axis
}

// yLimit keeps the plot at [-2, 2] unless the output leaves that band.
func yLimit(output []float64) float64 {
	if len(output) == 0 {
		return 2
	}
	peak := math.Max(math.Abs(floats.Min(output)), math.Abs(floats.Max(output)))
	return math.Max(2, math.Ceil(peak))
}
