// SPDX-License-Identifier: EPL-2.0

package swarmsynth

import (
	"fmt"
	"io"

	"github.com/arlorostirolla/swarmsynth/formats/wav"
	"github.com/arlorostirolla/swarmsynth/synth"
)

// Patch describes one complete voice: an oscillator plus an optional stage
// for each slot of the pipeline. A nil stage is disabled. Stages always run
// in the order listed here; use synth.Chain directly for a custom order.
type Patch struct {
	Osc synth.Oscillator

	Amp        *synth.ADSR
	Sweep      *synth.FilterSweep
	Lowpass    *synth.Lowpass
	Highpass   *synth.Highpass
	EQ         synth.Equalizer
	Compressor *synth.Compressor
	Distortion *synth.Distortion
	Reverb     *synth.Reverb

	// Normalize scales the final buffer to unit peak. Rendering an all-zero
	// buffer with Normalize set fails with synth.ErrSilentBuffer.
	Normalize bool
}

// chain assembles the enabled stages in pipeline order.
func (p Patch) chain() synth.Chain {
	var c synth.Chain
	if p.Amp != nil {
		c = append(c, *p.Amp)
	}
	if p.Sweep != nil {
		c = append(c, *p.Sweep)
	}
	if p.Lowpass != nil {
		c = append(c, *p.Lowpass)
	}
	if p.Highpass != nil {
		c = append(c, *p.Highpass)
	}
	if len(p.EQ) > 0 {
		c = append(c, p.EQ)
	}
	if p.Compressor != nil {
		c = append(c, *p.Compressor)
	}
	if p.Distortion != nil {
		c = append(c, *p.Distortion)
	}
	if p.Reverb != nil {
		c = append(c, *p.Reverb)
	}
	return c
}

// RenderVoice generates the patch's oscillator and runs the enabled stages
// over it. Independent calls share no state and may run concurrently.
func RenderVoice(p Patch) (*synth.Buffer, error) {
	buf, err := p.Osc.Generate()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	buf, err = p.chain().Apply(buf)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	if p.Normalize {
		buf, err = synth.Normalize(buf)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}
	return buf, nil
}

// RenderWAV renders the patch and encodes it as mono 16-bit PCM WAV.
func RenderWAV(p Patch, w io.WriteSeeker) error {
	buf, err := RenderVoice(p)
	if err != nil {
		return err
	}
	return wav.Write(w, buf)
}
