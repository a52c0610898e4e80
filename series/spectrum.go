package series

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum returns the single-sided magnitude spectrum of samples, scaled so
// that a unit sine landing exactly on a bin reads 1.
func Spectrum(samples []float64) []float64 {
	n := len(samples)
	if n == 0 {
		return []float64{}
	}
	bins := fft.FFTReal(samples)
	mags := make([]float64, n/2+1)
	for i := range mags {
		m := cmplx.Abs(bins[i]) / float64(n)
		if i != 0 && !(n%2 == 0 && i == n/2) {
			m *= 2
		}
		mags[i] = m
	}
	return mags
}
