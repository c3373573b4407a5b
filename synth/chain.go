// SPDX-License-Identifier: EPL-2.0

package synth

import "fmt"

// Stage is one buffer-to-buffer transform of the effect pipeline. Apply
// must leave its input untouched and return a fresh buffer of the same
// length and rate.
type Stage interface {
	Apply(in *Buffer) (*Buffer, error)
}

// Compile-time checks that every processing stage is chainable.
var (
	_ Stage = ADSR{}
	_ Stage = FilterSweep{}
	_ Stage = Lowpass{}
	_ Stage = Highpass{}
	_ Stage = Equalizer(nil)
	_ Stage = Compressor{}
	_ Stage = Distortion{}
	_ Stage = Reverb{}
)

// Chain applies stages in order, each stage's output feeding the next.
// Disabling a stage means leaving it out of the chain. An empty chain
// returns the input buffer as-is.
type Chain []Stage

// Apply runs the chain. On a stage failure the error is returned and the
// caller's buffer is untouched.
func (c Chain) Apply(in *Buffer) (*Buffer, error) {
	out := in
	for i, stage := range c {
		next, err := stage.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("chain stage %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}
