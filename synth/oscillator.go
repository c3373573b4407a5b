// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"math/rand"
)

const twoPi = 2 * math.Pi

// Waveform enumerates the supported oscillator variants.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
	// Pulse is a square wave with a configurable duty cycle.
	Pulse
	// Noise is uniform white noise in [-1, 1).
	Noise
	// Sine2 adds a half-weighted sine one octave up.
	Sine2
	Sawtooth2
	Triangle2
	// Harmonic stacks sines at 1x, 2x and 3x frequency with 1, 1/2 and 1/3
	// weights.
	Harmonic
	Sawtooth3
	Triangle3
	Square3
	// FMSine and friends frequency-modulate a carrier by a modulator of the
	// same waveform family.
	FMSine
	FMSquare
	FMSawtooth
	FMTriangle
)

var waveformNames = map[Waveform]string{
	Sine:       "sine",
	Square:     "square",
	Sawtooth:   "sawtooth",
	Triangle:   "triangle",
	Pulse:      "pulse",
	Noise:      "noise",
	Sine2:      "sine2",
	Sawtooth2:  "sawtooth2",
	Triangle2:  "triangle2",
	Harmonic:   "harmonic",
	Sawtooth3:  "sawtooth3",
	Triangle3:  "triangle3",
	Square3:    "square3",
	FMSine:     "fm_sine",
	FMSquare:   "fm_square",
	FMSawtooth: "fm_sawtooth",
	FMTriangle: "fm_triangle",
}

func (w Waveform) String() string {
	if name, ok := waveformNames[w]; ok {
		return name
	}
	return fmt.Sprintf("waveform(%d)", int(w))
}

// ParseWaveform resolves a waveform by name. "pwm" is accepted as an alias
// for "pulse".
func ParseWaveform(name string) (Waveform, error) {
	if name == "pwm" {
		return Pulse, nil
	}
	for w, n := range waveformNames {
		if n == name {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOscillatorType, name)
}

// Oscillator describes one voice to generate. It is consumed by Generate to
// produce a single buffer of floor(Duration*Rate) samples over the half-open
// interval [0, Duration).
type Oscillator struct {
	Type     Waveform
	Freq     float64 // Hz
	Duration float64 // seconds
	Rate     int     // sample rate in Hz

	// FMIndex and FMFreq configure the FM variants: the carrier's
	// instantaneous frequency is Freq + FMIndex*modulator(FMFreq, t).
	FMIndex float64
	FMFreq  float64

	// Duty is the pulse duty cycle in (0, 1). The zero value means 0.5.
	Duty float64

	// Rand is the noise source. Nil falls back to the shared math/rand
	// source; inject a seeded generator for reproducible noise.
	Rand *rand.Rand
}

// waveFunc evaluates one cycle-periodic waveform at phase theta (radians).
type waveFunc func(theta float64) float64

func sineWave(theta float64) float64 { return math.Sin(theta) }

// phaseFrac maps theta to its position within the cycle, in [0, 1).
func phaseFrac(theta float64) float64 {
	f := math.Mod(theta/twoPi, 1)
	if f < 0 {
		f++
	}
	return f
}

func squareWave(theta float64) float64 {
	if phaseFrac(theta) < 0.5 {
		return 1
	}
	return -1
}

func sawtoothWave(theta float64) float64 {
	return 2*phaseFrac(theta) - 1
}

func triangleWave(theta float64) float64 {
	f := phaseFrac(theta)
	if f < 0.5 {
		return 4*f - 1
	}
	return 3 - 4*f
}

// Generate renders the oscillator into a fresh buffer. Harmonic-stacked and
// FM variants may exceed unit amplitude; normalization is the caller's
// explicit step.
func (o Oscillator) Generate() (*Buffer, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	buf := NewBuffer(int(o.Duration*float64(o.Rate)), o.Rate)

	switch o.Type {
	case Sine:
		o.fill(buf, sineWave)
	case Square:
		o.fill(buf, squareWave)
	case Sawtooth:
		o.fill(buf, sawtoothWave)
	case Triangle:
		o.fill(buf, triangleWave)
	case Pulse:
		o.fillPulse(buf)
	case Noise:
		o.fillNoise(buf)
	case Sine2:
		o.fillStack(buf, sineWave, 2)
	case Sawtooth2:
		o.fillStack(buf, sawtoothWave, 2)
	case Triangle2:
		o.fillStack(buf, triangleWave, 2)
	case Harmonic:
		o.fillStack(buf, sineWave, 3)
	case Sawtooth3:
		o.fillStack(buf, sawtoothWave, 3)
	case Triangle3:
		o.fillStack(buf, triangleWave, 3)
	case Square3:
		o.fillStack(buf, squareWave, 3)
	case FMSine:
		o.fillFM(buf, sineWave)
	case FMSquare:
		o.fillFM(buf, squareWave)
	case FMSawtooth:
		o.fillFM(buf, sawtoothWave)
	case FMTriangle:
		o.fillFM(buf, triangleWave)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidOscillatorType, o.Type)
	}

	return buf, nil
}

func (o Oscillator) validate() error {
	for _, v := range []float64{o.Freq, o.Duration, o.FMIndex, o.FMFreq, o.Duty} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("oscillator: %w: non-finite value", ErrInvalidParameter)
		}
	}
	if o.Duration <= 0 {
		return fmt.Errorf("oscillator: %w: duration %v", ErrInvalidParameter, o.Duration)
	}
	if o.Rate <= 0 {
		return fmt.Errorf("oscillator: %w: sample rate %d", ErrInvalidParameter, o.Rate)
	}
	if o.Freq < 0 {
		return fmt.Errorf("oscillator: %w: frequency %v", ErrInvalidParameter, o.Freq)
	}
	if o.Duty != 0 && (o.Duty <= 0 || o.Duty >= 1) {
		return fmt.Errorf("oscillator: %w: duty cycle %v", ErrInvalidParameter, o.Duty)
	}
	return nil
}

func (o Oscillator) fill(buf *Buffer, wave waveFunc) {
	for i := range buf.Samples {
		t := float64(i) / float64(o.Rate)
		buf.Samples[i] = wave(twoPi * o.Freq * t)
	}
}

// fillStack sums 1/h-weighted copies of the base wave at h times the
// fundamental, for h up to harmonics.
func (o Oscillator) fillStack(buf *Buffer, wave waveFunc, harmonics int) {
	for i := range buf.Samples {
		t := float64(i) / float64(o.Rate)
		var v float64
		for h := 1; h <= harmonics; h++ {
			v += wave(twoPi*float64(h)*o.Freq*t) / float64(h)
		}
		buf.Samples[i] = v
	}
}

func (o Oscillator) fillPulse(buf *Buffer) {
	duty := o.Duty
	if duty == 0 {
		duty = 0.5
	}
	for i := range buf.Samples {
		t := float64(i) / float64(o.Rate)
		if phaseFrac(twoPi*o.Freq*t) < duty {
			buf.Samples[i] = 1
		} else {
			buf.Samples[i] = -1
		}
	}
}

func (o Oscillator) fillNoise(buf *Buffer) {
	for i := range buf.Samples {
		var u float64
		if o.Rand != nil {
			u = o.Rand.Float64()
		} else {
			u = rand.Float64()
		}
		buf.Samples[i] = 2*u - 1
	}
}

// fillFM evaluates the carrier at phase 2*pi*(Freq + FMIndex*mod(t))*t, with
// the modulator running at FMFreq. The instantaneous frequency scales the
// absolute time axis rather than being integrated.
func (o Oscillator) fillFM(buf *Buffer, wave waveFunc) {
	for i := range buf.Samples {
		t := float64(i) / float64(o.Rate)
		mod := wave(twoPi * o.FMFreq * t)
		buf.Samples[i] = wave(twoPi * (o.Freq + o.FMIndex*mod) * t)
	}
}
