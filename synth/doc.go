// SPDX-License-Identifier: EPL-2.0

// Package synth provides the signal-generation and signal-shaping primitives
// of the engine.
//
// This package contains the core building blocks:
//   - Oscillator for raw waveform generation (including FM variants)
//   - ADSR and FilterSweep envelope generators
//   - Lowpass, Highpass and Equalizer recursive filters
//   - Compressor and Distortion dynamics stages
//   - Reverb feedback delay line
//   - GenerateBank for randomized wavetable banks
//
// # Sample Buffers
//
// Audio is represented as a Buffer: a mono sequence of float64 samples plus
// its sample rate in Hz. Samples are not inherently bounded to [-1, 1];
// harmonic-stacked and FM oscillator variants can exceed unit amplitude, and
// Normalize is an explicit, separate operation:
//
//	osc := synth.Oscillator{Type: synth.Harmonic, Freq: 440, Duration: 1, Rate: 44100}
//	buf, _ := osc.Generate()
//	buf, _ = synth.Normalize(buf)
//
// # Stages
//
// Every envelope, filter, dynamics and reverb type implements the Stage
// interface: an explicit input to output transform that allocates a fresh
// buffer and never mutates its input. Stages preserve buffer length. A
// caller-chosen, ordered subset of stages forms a Chain:
//
//	chain := synth.Chain{
//	    synth.ADSR{Attack: 0.01, Decay: 0.1, Sustain: 0.7, Release: 0.2},
//	    synth.Lowpass{Cutoff: 2000, Resonance: 1},
//	    synth.Reverb{Delay: 0.05, Decay: 0.4},
//	}
//	out, err := chain.Apply(buf)
//
// Disabling a stage means leaving it out of the chain.
//
// # Filters
//
// Lowpass and Highpass are classic 2nd-order Butterworth designs derived
// from cutoff/(rate/2) and applied once over the whole buffer with zero
// initial state; no filter memory persists between calls. The Resonance
// parameter is a flat post-filter gain multiplier, not a true Q boost.
// The Equalizer cascades one peaking biquad per band using the audio EQ
// cookbook coefficient forms.
//
// # Determinism
//
// Every operation is a deterministic numeric computation except the noise
// oscillator and GenerateBank, which draw from an injectable *rand.Rand so
// callers can seed their own source and get reproducible output.
//
// # Error Handling
//
// Failures are reported through sentinel errors that callers match with
// errors.Is:
//
//	if errors.Is(err, synth.ErrSilentBuffer) {
//	    // normalization of an all-zero buffer
//	}
//
// No partial buffers are returned on error, and a failing stage never
// mutates the caller's buffer.
package synth
