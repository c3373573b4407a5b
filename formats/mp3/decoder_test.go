package mp3

import (
	"bytes"
	"testing"
)

func TestLoad_InvalidInput(t *testing.T) {
	t.Parallel()

	// Invalid MP3 data
	invalidData := []byte("This is not MP3 data")

	if _, err := Load(bytes.NewReader(invalidData)); err == nil {
		t.Error("Load() error = nil, want error for invalid data")
	}
}

func TestLoad_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := Load(bytes.NewReader(nil)); err == nil {
		t.Error("Load() error = nil, want error for empty input")
	}
}

func TestErrNoAudioData(t *testing.T) {
	t.Parallel()

	if ErrNoAudioData.Error() != "no audio data" {
		t.Errorf("ErrNoAudioData.Error() = %q, want %q", ErrNoAudioData.Error(), "no audio data")
	}
}
