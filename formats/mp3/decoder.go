// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/arlorostirolla/swarmsynth/synth"
)

var ErrNoAudioData = errors.New("no audio data")

// Load decodes an MP3 stream into a mono buffer.
func Load(r io.Reader) (*synth.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	// go-mp3 emits 16-bit little-endian PCM, always two channels.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	frames := len(raw) / 4
	if frames == 0 {
		return nil, ErrNoAudioData
	}

	samples := make([]float64, frames)
	for f := 0; f < frames; f++ {
		left := int16(uint16(raw[4*f]) | uint16(raw[4*f+1])<<8)
		right := int16(uint16(raw[4*f+2]) | uint16(raw[4*f+3])<<8)
		samples[f] = (float64(left) + float64(right)) / 2 / 32768
	}

	return &synth.Buffer{Samples: samples, Rate: dec.SampleRate()}, nil
}
