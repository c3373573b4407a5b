// SPDX-License-Identifier: EPL-2.0

// Package swarmsynth is a monophonic audio synthesis and effects engine for
// generative sound design.
//
// Given a waveform shape, frequency, duration and sample rate it produces a
// buffer of samples, then shapes that buffer through amplitude and spectral
// envelopes and a configurable chain of filters, dynamics and time-based
// effects. Everything is an offline, deterministic computation over complete
// buffers; there is no real-time or streaming path.
//
// # Quick Start
//
// The simplest way to render a voice is a Patch:
//
//	patch := swarmsynth.Patch{
//	    Osc: synth.Oscillator{Type: synth.Sawtooth, Freq: 220, Duration: 1, Rate: 44100},
//	    Amp: &synth.ADSR{Attack: 0.01, Decay: 0.1, Sustain: 0.7, Release: 0.2},
//	    Lowpass: &synth.Lowpass{Cutoff: 3000, Resonance: 1},
//	    Reverb: &synth.Reverb{Delay: 0.05, Decay: 0.4},
//	    Normalize: true,
//	}
//	buf, err := swarmsynth.RenderVoice(patch)
//
// Nil stage fields are disabled; set fields run in the fixed pipeline order
// amplitude envelope, filter sweep, lowpass, highpass, equalizer,
// compressor, distortion, reverb.
//
// # Building Blocks
//
// For full control, use the synth subpackage directly: generate a raw
// oscillator buffer and apply any ordered subset of stages as a
// synth.Chain. See the synth package documentation.
//
// # File I/O and Analysis
//
// The formats subpackages load WAV, AIFF, MP3 and Ogg Vorbis recordings
// into buffers and write rendered buffers as 16-bit PCM WAV:
//
//	out, _ := os.Create("voice.wav")
//	err := swarmsynth.RenderWAV(patch, out)
//
// The analyze subpackage estimates the pitch and duration of an existing
// recording, useful for resynthesizing a target sound.
//
// # Errors
//
// All failures surface synchronously as wrapped sentinel errors from the
// synth package (synth.ErrInvalidParameter, synth.ErrInvalidOscillatorType,
// synth.ErrSilentBuffer, synth.ErrDegenerateEnvelope); match them with
// errors.Is.
package swarmsynth
