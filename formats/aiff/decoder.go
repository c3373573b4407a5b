// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/arlorostirolla/swarmsynth/synth"
)

var (
	ErrNotAiffFile = errors.New("not an AIFF file")
	ErrNoAudioData = errors.New("no audio data")
)

// Load decodes an AIFF stream into a mono buffer, averaging multichannel
// input and scaling by the source bit depth.
func Load(r io.ReadSeeker) (*synth.Buffer, error) {
	dec := goaiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
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
