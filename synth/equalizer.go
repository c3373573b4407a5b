// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// EQBand is one parametric equalizer band: a peaking biquad centered at
// Freq with GainDB of boost or cut and bandwidth set by Q.
type EQBand struct {
	Freq   float64
	GainDB float64
	Q      float64
}

// Equalizer is an ordered set of bands applied as a cascade, each band's
// output feeding the next. A band at 0 dB is an exact passthrough.
type Equalizer []EQBand

// Apply runs every band over a copy of in.
func (eq Equalizer) Apply(in *Buffer) (*Buffer, error) {
	out := in.Clone()
	for i, band := range eq {
		coeffs, err := peakingCoeffs(band, in.Rate)
		if err != nil {
			return nil, fmt.Errorf("equalizer band %d: %w", i, err)
		}
		out.Samples = coeffs.process(out.Samples)
	}
	return out, nil
}

// peakingCoeffs derives cookbook peaking-EQ coefficients. Boost and cut use
// mirrored numerator/denominator forms.
func peakingCoeffs(band EQBand, rate int) (biquad, error) {
	if err := checkCutoff(band.Freq, rate); err != nil {
		return biquad{}, err
	}
	if math.IsNaN(band.Q) || band.Q <= 0 {
		return biquad{}, fmt.Errorf("%w: Q %v", ErrInvalidParameter, band.Q)
	}
	if math.IsNaN(band.GainDB) || math.IsInf(band.GainDB, 0) {
		return biquad{}, fmt.Errorf("%w: gain %v dB", ErrInvalidParameter, band.GainDB)
	}

	w0 := twoPi * band.Freq / float64(rate)
	sin, cos := math.Sincos(w0)
	alpha := sin / (2 * band.Q)
	a := math.Pow(10, band.GainDB/40)

	if band.GainDB >= 0 {
		return newBiquad(
			1+alpha*a, -2*cos, 1-alpha*a,
			1+alpha/a, -2*cos, 1-alpha/a,
		), nil
	}
	return newBiquad(
		1-alpha/a, -2*cos, 1+alpha/a,
		1+alpha*a, -2*cos, 1-alpha*a,
	), nil
}
