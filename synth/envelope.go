// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// ADSR is an attack-decay-sustain-release amplitude envelope. Attack, Decay
// and Release are in seconds; Sustain is a level in [0, 1].
//
// Attack and decay spans are each capped at a quarter of the buffer length;
// longer requests are clamped without error. If attack, decay and release
// together still exceed the buffer, the sustain span would be negative and
// Apply fails with ErrDegenerateEnvelope.
type ADSR struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// Apply multiplies the envelope curve pointwise into a copy of in.
func (e ADSR) Apply(in *Buffer) (*Buffer, error) {
	env, err := e.curve(len(in.Samples), in.Rate)
	if err != nil {
		return nil, err
	}
	out := in.Clone()
	for i := range out.Samples {
		out.Samples[i] *= env[i]
	}
	return out, nil
}

// curve builds the per-sample gain values. The attack and decay ramps
// exclude their endpoint, the release ramp includes it. Shared with the
// compressor.
func (e ADSR) curve(n, rate int) ([]float64, error) {
	for _, v := range []float64{e.Attack, e.Decay, e.Sustain, e.Release} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("adsr: %w: %v", ErrInvalidParameter, v)
		}
	}
	if e.Sustain > 1 {
		return nil, fmt.Errorf("adsr: %w: sustain %v", ErrInvalidParameter, e.Sustain)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("adsr: %w: sample rate %d", ErrInvalidParameter, rate)
	}

	maxPhase := int(math.Round(float64(n) / 4))
	attack := int(math.Round(e.Attack * float64(rate)))
	decay := int(math.Round(e.Decay * float64(rate)))
	release := int(math.Round(e.Release * float64(rate)))
	attack = min(attack, maxPhase)
	decay = min(decay, maxPhase)

	if attack+decay+release > n {
		return nil, fmt.Errorf("adsr: %w: %d+%d+%d samples in a %d sample buffer",
			ErrDegenerateEnvelope, attack, decay, release, n)
	}

	env := make([]float64, n)
	for i := 0; i < attack; i++ {
		env[i] = float64(i) / float64(attack)
	}
	for i := 0; i < decay; i++ {
		env[attack+i] = 1 + (e.Sustain-1)*float64(i)/float64(decay)
	}
	for i := attack + decay; i < n-release; i++ {
		env[i] = e.Sustain
	}
	switch {
	case release == 1:
		env[n-1] = e.Sustain
	case release > 1:
		for i := 0; i < release; i++ {
			env[n-release+i] = e.Sustain * (1 - float64(i)/float64(release-1))
		}
	}
	return env, nil
}

// FilterSweep is an auto-wah style spectral envelope: a linear ramp between
// Start and End (in Hz) across the whole buffer is smoothed through the
// 2nd-order low-pass at Cutoff, peak-normalized, and multiplied pointwise
// into the audio. It shapes amplitude along a cutoff trajectory rather than
// driving an actual filter sweep.
type FilterSweep struct {
	Cutoff float64
	Start  float64
	End    float64
}

// Apply returns a copy of in shaped by the smoothed ramp.
func (s FilterSweep) Apply(in *Buffer) (*Buffer, error) {
	for _, v := range []float64{s.Start, s.End} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("filter sweep: %w: non-finite value", ErrInvalidParameter)
		}
	}
	coeffs, err := lowpassCoeffs(s.Cutoff, in.Rate)
	if err != nil {
		return nil, fmt.Errorf("filter sweep: %w", err)
	}

	n := len(in.Samples)
	ramp := make([]float64, n)
	for i := range ramp {
		if n == 1 {
			ramp[i] = s.Start
			continue
		}
		ramp[i] = s.Start + (s.End-s.Start)*float64(i)/float64(n-1)
	}

	env := coeffs.process(ramp)
	var peak float64
	for _, v := range env {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return nil, fmt.Errorf("filter sweep: %w", ErrSilentBuffer)
	}

	out := in.Clone()
	for i := range out.Samples {
		out.Samples[i] *= env[i] / peak
	}
	return out, nil
}
