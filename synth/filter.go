// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// biquad is a 2nd-order recursive filter section, Direct Form I, with the
// denominator normalized so a0 == 1.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

func newBiquad(b0, b1, b2, a0, a1, a2 float64) biquad {
	inv := 1 / a0
	return biquad{
		b0: b0 * inv,
		b1: b1 * inv,
		b2: b2 * inv,
		a1: a1 * inv,
		a2: a2 * inv,
	}
}

// process runs the recursion over src in one pass with zero initial state
// and returns a fresh output slice.
func (f biquad) process(src []float64) []float64 {
	dst := make([]float64, len(src))
	var x1, x2, y1, y2 float64
	for i, x0 := range src {
		y0 := f.b0*x0 + f.b1*x1 + f.b2*x2 - f.a1*y1 - f.a2*y2
		x2, x1 = x1, x0
		y2, y1 = y1, y0
		dst[i] = y0
	}
	return dst
}

// butterworthQ yields a maximally flat 2nd-order response; the bilinear
// low/high-pass designs below are the classic Butterworth forms.
const butterworthQ = math.Sqrt2 / 2

func checkCutoff(cutoff float64, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, rate)
	}
	nyquist := float64(rate) / 2
	if math.IsNaN(cutoff) || cutoff <= 0 || cutoff >= nyquist {
		return fmt.Errorf("%w: cutoff %v outside (0, %v)", ErrInvalidParameter, cutoff, nyquist)
	}
	return nil
}

func lowpassCoeffs(cutoff float64, rate int) (biquad, error) {
	if err := checkCutoff(cutoff, rate); err != nil {
		return biquad{}, err
	}
	w0 := twoPi * cutoff / float64(rate)
	sin, cos := math.Sincos(w0)
	alpha := sin / (2 * butterworthQ)
	return newBiquad(
		(1-cos)/2, 1-cos, (1-cos)/2,
		1+alpha, -2*cos, 1-alpha,
	), nil
}

func highpassCoeffs(cutoff float64, rate int) (biquad, error) {
	if err := checkCutoff(cutoff, rate); err != nil {
		return biquad{}, err
	}
	w0 := twoPi * cutoff / float64(rate)
	sin, cos := math.Sincos(w0)
	alpha := sin / (2 * butterworthQ)
	return newBiquad(
		(1+cos)/2, -(1 + cos), (1+cos)/2,
		1+alpha, -2*cos, 1-alpha,
	), nil
}

// Lowpass is a 2nd-order Butterworth low-pass. Resonance is a flat
// post-filter gain multiplier, not a true Q boost.
type Lowpass struct {
	Cutoff    float64
	Resonance float64
}

// Apply filters a copy of in with zero initial filter state.
func (f Lowpass) Apply(in *Buffer) (*Buffer, error) {
	coeffs, err := lowpassCoeffs(f.Cutoff, in.Rate)
	if err != nil {
		return nil, fmt.Errorf("lowpass: %w", err)
	}
	return applyGain(in, coeffs, f.Resonance, "lowpass")
}

// Highpass is the high-pass counterpart of Lowpass.
type Highpass struct {
	Cutoff    float64
	Resonance float64
}

// Apply filters a copy of in with zero initial filter state.
func (f Highpass) Apply(in *Buffer) (*Buffer, error) {
	coeffs, err := highpassCoeffs(f.Cutoff, in.Rate)
	if err != nil {
		return nil, fmt.Errorf("highpass: %w", err)
	}
	return applyGain(in, coeffs, f.Resonance, "highpass")
}

func applyGain(in *Buffer, coeffs biquad, gain float64, name string) (*Buffer, error) {
	if math.IsNaN(gain) || math.IsInf(gain, 0) {
		return nil, fmt.Errorf("%s: %w: resonance %v", name, ErrInvalidParameter, gain)
	}
	out := &Buffer{Samples: coeffs.process(in.Samples), Rate: in.Rate}
	for i := range out.Samples {
		out.Samples[i] *= gain
	}
	return out, nil
}
