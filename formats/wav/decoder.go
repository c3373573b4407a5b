// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/arlorostirolla/swarmsynth/synth"
)

// Load decodes a PCM WAV stream into a mono buffer. Multichannel input is
// averaged down to one channel; samples are scaled to [-1, 1] by the source
// bit depth.
func Load(r io.ReadSeeker) (*synth.Buffer, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}
	if pcm == nil || len(pcm.Data) == 0 {
		return nil, ErrNoAudioData
	}

	channels := pcm.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	scale := pcmScale(pcm.SourceBitDepth)

	frames := len(pcm.Data) / channels
	samples := make([]float64, frames)
	for f := 0; f < frames; f++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(pcm.Data[f*channels+c])
		}
		samples[f] = sum / float64(channels) / scale
	}

	return &synth.Buffer{Samples: samples, Rate: pcm.Format.SampleRate}, nil
}

// pcmScale returns the full-scale divisor for a signed PCM bit depth.
func pcmScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128
	case 16:
		return 32768
	case 24:
		return 8388608
	case 32:
		return 2147483648
	default:
		return 32768
	}
}
