package entity

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fourier/entity/kind"
	"github.com/AnkushinDaniil/fourier/entity/parameters"
	"github.com/AnkushinDaniil/fourier/series"
)

// Model holds the current series parameters and the output they produce.
// Every command recomputes the whole output before returning. Values are
// taken as given; controls are expected to clamp them. A Model is not safe
// for concurrent use.
type Model struct {
	grid   []float64
	params parameters.Parameters
	output []float64
}

func NewModel(grid []float64) *Model {
	m := &Model{
		grid:   grid,
		params: parameters.Default(),
	}
	m.recompute()
	return m
}

func (m *Model) SetTerms(terms int) {
	m.params.Terms = terms
	m.recompute()
}

func (m *Model) SetFrequency(frequency float64) {
	m.params.Frequency = frequency
	m.recompute()
}

func (m *Model) SetAmplitude(amplitude float64) {
	m.params.Amplitude = amplitude
	m.recompute()
}

func (m *Model) SetKind(k kind.Kind) {
	m.params.Kind = k
	m.recompute()
}

// Reset restores the default parameters.
func (m *Model) Reset() {
	m.params = parameters.Default()
	m.recompute()
}

// Populate recomputes the output for the current parameters and returns a
// confirmation message.
func (m *Model) Populate() string {
	m.recompute()
	msg := fmt.Sprintf("Fourier series populated with %d terms", m.params.Terms)
	log.Info(msg)
	return msg
}

func (m *Model) Output() []float64 {
	return m.output
}

func (m *Model) Grid() []float64 {
	return m.grid
}

func (m *Model) Params() parameters.Parameters {
	return m.params
}

func (m *Model) Title() string {
	return fmt.Sprintf("%s Wave (%d terms)", m.params.Kind.Label(), m.params.Terms)
}

func (m *Model) recompute() {
	start := time.Now()
	p := m.params
	m.output = series.Compute(m.grid, p.Kind, p.Terms, p.Frequency, p.Amplitude)
	log.WithFields(log.Fields{
		"kind":      p.Kind,
		"terms":     p.Terms,
		"frequency": p.Frequency,
		"amplitude": p.Amplitude,
		"time":      time.Since(start),
	}).Debug("Series computed")
}
