// Package series evaluates truncated Fourier series of periodic waveforms
// over a fixed sample grid.
package series

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/fourier/entity/kind"
)

const (
	DefaultPoints = 1000
	DefaultMin    = -2 * math.Pi
	DefaultMax    = 2 * math.Pi
)

// NewGrid returns n evenly spaced points over [lo, hi], both ends included.
func NewGrid(n int, lo, hi float64) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func DefaultGrid() []float64 {
	return NewGrid(DefaultPoints, DefaultMin, DefaultMax)
}

// oddOnly reports whether the series of k has no even harmonics.
func oddOnly(k kind.Kind) bool {
	return k == kind.Square || k == kind.Triangle
}

// Coefficient returns the weight of the n-th harmonic of k, before the
// amplitude is applied. Even harmonics of odd-only kinds weigh 0.
func Coefficient(k kind.Kind, n int) float64 {
	if n < 1 || (oddOnly(k) && n%2 == 0) {
		return 0
	}
	fn := float64(n)
	switch k {
	case kind.Square:
		return 4 / (fn * math.Pi)
	case kind.Sawtooth:
		return 2 / (fn * math.Pi) * sign(n+1)
	case kind.Triangle:
		return 8 / (fn * fn * math.Pi * math.Pi) * sign((n-1)/2)
	case kind.Pulse:
		return 2 / (fn * math.Pi) * math.Sin(fn*math.Pi/2)
	default:
		return 0
	}
}

// sign is (-1)^p.
func sign(p int) float64 {
	if p%2 == 0 {
		return 1
	}
	return -1
}

// Compute returns the partial sum of the first terms harmonics of k at every
// grid point, scaled by amplitude. A non-positive term count or an unknown
// kind yields all zeros.
func Compute(grid []float64, k kind.Kind, terms int, frequency, amplitude float64) []float64 {
	out := make([]float64, len(grid))

	var basis func(float64) float64
	switch k {
	case kind.Square, kind.Sawtooth, kind.Triangle:
		basis = math.Sin
	case kind.Pulse:
		basis = math.Cos
	default:
		return out
	}

	step := 1
	if oddOnly(k) {
		step = 2
	}
	for n := 1; n <= terms; n += step {
		c := Coefficient(k, n)
		w := float64(n) * frequency
		for i, x := range grid {
			out[i] += c * basis(w*x)
		}
	}
	floats.Scale(amplitude, out)
	return out
}
