package parameters

import (
	"github.com/AnkushinDaniil/fourier/entity/kind"
)

// Parameters is the full input set of one series evaluation.
type Parameters struct {
	Terms     int
	Frequency float64
	Amplitude float64
	Kind      kind.Kind
}

func Default() Parameters {
	return Parameters{
		Terms:     5,
		Frequency: 1.0,
		Amplitude: 1.0,
		Kind:      kind.Square,
	}
}

// Range bounds a control. Step is the increment a control moves by.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

var (
	TermsRange     = Range{Min: 1, Max: 20, Step: 1}
	FrequencyRange = Range{Min: 0.1, Max: 5.0, Step: 0.1}
	AmplitudeRange = Range{Min: 0.1, Max: 3.0, Step: 0.1}
)

func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}
