// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Reverb is a single-tap feedback delay line. Delay is the tap time in
// seconds; Decay is the feedback coefficient and must stay in [0, 1) —
// values at or above 1 diverge and are rejected rather than clamped.
type Reverb struct {
	Delay float64
	Decay float64
}

// Apply mixes the decayed delay tap into a copy of in. The output keeps the
// input length; the tail beyond it is dropped. The loop is strictly
// sequential: each step writes delay-line slots that later steps read.
func (r Reverb) Apply(in *Buffer) (*Buffer, error) {
	if math.IsNaN(r.Delay) || math.IsInf(r.Delay, 0) || r.Delay < 0 {
		return nil, fmt.Errorf("reverb: %w: delay %v", ErrInvalidParameter, r.Delay)
	}
	if math.IsNaN(r.Decay) || r.Decay < 0 || r.Decay >= 1 {
		return nil, fmt.Errorf("reverb: %w: decay %v outside [0, 1)", ErrInvalidParameter, r.Decay)
	}
	if in.Rate <= 0 {
		return nil, fmt.Errorf("reverb: %w: sample rate %d", ErrInvalidParameter, in.Rate)
	}

	n := len(in.Samples)
	delaySamples := int(math.Round(r.Delay * float64(in.Rate)))
	line := make([]float64, delaySamples+n)

	out := in.Clone()
	for i, dry := range in.Samples {
		delayed := line[i] * r.Decay
		line[i+delaySamples] += dry
		line[i] += delayed
		out.Samples[i] = dry + delayed
	}
	return out, nil
}
