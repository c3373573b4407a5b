// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/arlorostirolla/swarmsynth/synth"
)

var ErrNoAudioData = errors.New("no audio data")

// Load decodes an Ogg Vorbis stream into a mono buffer, averaging the
// interleaved channels.
func Load(r io.Reader) (*synth.Buffer, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	channels := format.Channels
	if channels < 1 {
		channels = 1
	}
	frames := len(data) / channels
	if frames == 0 {
		return nil, ErrNoAudioData
	}

	samples := make([]float64, frames)
	for f := 0; f < frames; f++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(data[f*channels+c])
		}
		samples[f] = sum / float64(channels)
	}

	return &synth.Buffer{Samples: samples, Rate: format.SampleRate}, nil
}
