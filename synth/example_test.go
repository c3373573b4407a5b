// SPDX-License-Identifier: EPL-2.0

package synth_test

import (
	"fmt"
	"math/rand"

	"github.com/arlorostirolla/swarmsynth/synth"
)

// Example_oscillator generates one cycle of a square wave.
func Example_oscillator() {
	osc := synth.Oscillator{
		Type:     synth.Square,
		Freq:     1,
		Duration: 1,
		Rate:     4,
	}

	buf, err := osc.Generate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(buf.Samples)
	// Output:
	// [1 1 -1 -1]
}

// Example_envelope shapes a constant signal with an ADSR contour.
func Example_envelope() {
	in := &synth.Buffer{Samples: []float64{1, 1, 1, 1, 1, 1, 1, 1}, Rate: 8}

	env := synth.ADSR{
		Attack:  0.25,
		Decay:   0.25,
		Sustain: 0.5,
		Release: 0.25,
	}

	out, err := env.Apply(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(out.Samples)
	// Output:
	// [0 0.5 1 0.75 0.5 0.5 0.5 0]
}

// Example_effectChain runs a tone through a full processing chain.
func Example_effectChain() {
	osc := synth.Oscillator{
		Type:     synth.Sawtooth,
		Freq:     220,
		Duration: 1,
		Rate:     8000,
	}

	buf, err := osc.Generate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	chain := synth.Chain{
		synth.Lowpass{Cutoff: 1200, Resonance: 1},
		synth.Distortion{Threshold: 0.8},
		synth.Reverb{Delay: 0.05, Decay: 0.4},
	}

	out, err := chain.Apply(buf)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Samples: %d\n", len(out.Samples))
	fmt.Printf("Rate: %d Hz\n", out.Rate)
	fmt.Printf("Duration: %.2f seconds\n", out.Duration())
	// Output:
	// Samples: 8000
	// Rate: 8000 Hz
	// Duration: 1.00 seconds
}

// Example_wavetableBank builds a reproducible bank of wavetables.
func Example_wavetableBank() {
	rng := rand.New(rand.NewSource(42))
	amps := []float64{1, 0.5, 0.25, 0.125}

	tables, err := synth.GenerateBank(rng, amps, 4, 3, 1024)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Tables: %d\n", len(tables))
	fmt.Printf("Table size: %d\n", len(tables[0]))

	var peak float64
	for _, v := range tables[0] {
		if v > peak {
			peak = v
		}
	}
	fmt.Printf("Peak: %g\n", peak)
	// Output:
	// Tables: 3
	// Table size: 1024
	// Peak: 1
}
