// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// epsilon guards the gain-reduction division when rms*ratio and threshold
// coincide. Same magnitude as IEEE 754 double machine epsilon.
const epsilon = 2.220446049250313e-16

// Compressor reduces gain when the whole-buffer RMS exceeds Threshold
// (linear amplitude). The detector is deliberately buffer-global: one RMS
// measurement and one gain-reduction scalar, shaped in time by an
// attack/release-only envelope. It is not a per-sample envelope follower.
type Compressor struct {
	Threshold float64
	Ratio     float64
	Attack    float64 // seconds
	Release   float64 // seconds
}

// Apply returns in unchanged (as a copy) when RMS is at or below the
// threshold, otherwise the gain-reduced copy.
func (c Compressor) Apply(in *Buffer) (*Buffer, error) {
	for _, v := range []float64{c.Threshold, c.Ratio} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("compressor: %w: %v", ErrInvalidParameter, v)
		}
	}

	level := rms(in.Samples)
	if level <= c.Threshold {
		return in.Clone(), nil
	}

	env, err := ADSR{Attack: c.Attack, Sustain: 1, Release: c.Release}.curve(len(in.Samples), in.Rate)
	if err != nil {
		return nil, fmt.Errorf("compressor: %w", err)
	}
	reduction := (level - c.Threshold) / (level*c.Ratio - c.Threshold + epsilon)

	out := in.Clone()
	for i := range out.Samples {
		out.Samples[i] *= 1 - env[i]*reduction
	}
	return out, nil
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Distortion soft-clips through tanh(x/Threshold)*Threshold: monotonic,
// continuous, and bounded to [-Threshold, Threshold].
type Distortion struct {
	Threshold float64
}

// Apply returns the soft-clipped copy of in.
func (d Distortion) Apply(in *Buffer) (*Buffer, error) {
	if math.IsNaN(d.Threshold) || math.IsInf(d.Threshold, 0) || d.Threshold <= 0 {
		return nil, fmt.Errorf("distortion: %w: threshold %v", ErrInvalidParameter, d.Threshold)
	}
	out := in.Clone()
	for i, s := range out.Samples {
		out.Samples[i] = math.Tanh(s/d.Threshold) * d.Threshold
	}
	return out, nil
}
