// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

// Helper function to create a minimal valid WAV file
func createWAVFile(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	// Write samples
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestLoad_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	wavData := createWAVFile(8000, 1, 16, samples)

	buf, err := Load(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if buf.Rate != 8000 {
		t.Errorf("Rate = %d, want 8000", buf.Rate)
	}
	if len(buf.Samples) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(buf.Samples), len(samples))
	}

	for i, s := range samples {
		want := float64(s) / 32768
		if math.Abs(buf.Samples[i]-want) > 1e-9 {
			t.Errorf("sample %d = %v, want %v", i, buf.Samples[i], want)
		}
	}
}

func TestLoad_StereoDownmix(t *testing.T) {
	t.Parallel()

	// Three stereo frames averaged to mono.
	samples := []int16{100, 200, 300, 400, 500, 600}
	wavData := createWAVFile(44100, 2, 16, samples)

	buf, err := Load(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if buf.Rate != 44100 {
		t.Errorf("Rate = %d, want 44100", buf.Rate)
	}
	if len(buf.Samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(buf.Samples))
	}

	want := []float64{150.0 / 32768, 350.0 / 32768, 550.0 / 32768}
	for i := range want {
		if math.Abs(buf.Samples[i]-want[i]) > 1e-9 {
			t.Errorf("sample %d = %v, want %v", i, buf.Samples[i], want[i])
		}
	}
}

func TestLoad_NotWAVFile(t *testing.T) {
	t.Parallel()

	garbage := []byte("this is definitely not a RIFF container")

	_, err := Load(bytes.NewReader(garbage))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Load() error = %v, want ErrNotWavFile", err)
	}
}

func TestLoad_EmptyData(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, 16, nil)

	_, err := Load(bytes.NewReader(wavData))
	if !errors.Is(err, ErrNoAudioData) {
		t.Errorf("Load() error = %v, want ErrNoAudioData", err)
	}
}

func TestPCMScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     float64
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{0, 32768},
	}

	for _, tt := range tests {
		if got := pcmScale(tt.bitDepth); got != tt.want {
			t.Errorf("pcmScale(%d) = %v, want %v", tt.bitDepth, got, tt.want)
		}
	}
}
