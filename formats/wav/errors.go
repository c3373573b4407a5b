package wav

import "errors"

var (
	ErrNotWavFile  = errors.New("not a WAV file")
	ErrNoAudioData = errors.New("no audio data")
)
