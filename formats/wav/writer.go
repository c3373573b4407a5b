// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/arlorostirolla/swarmsynth/synth"
	"github.com/arlorostirolla/swarmsynth/utils"
)

// Write encodes buf as mono 16-bit PCM WAV. Samples outside [-1, 1] are
// clamped; normalize first if the buffer may exceed unit amplitude.
func Write(w io.WriteSeeker, buf *synth.Buffer) error {
	if buf == nil || len(buf.Samples) == 0 {
		return ErrNoAudioData
	}

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = int(utils.Float64ToInt16(s))
	}

	enc := gowav.NewEncoder(w, buf.Rate, 16, 1, 1)
	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: buf.Rate},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
