// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Buffer is a mono sample buffer together with its sample rate in Hz.
// Samples are float64 amplitudes with no inherent bounds; Normalize is a
// separate, explicit operation.
type Buffer struct {
	Samples []float64
	Rate    int
}

// NewBuffer returns a zero-filled buffer of n samples at the given rate.
func NewBuffer(n, rate int) *Buffer {
	if n < 0 {
		n = 0
	}
	return &Buffer{Samples: make([]float64, n), Rate: rate}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	s := make([]float64, len(b.Samples))
	copy(s, b.Samples)
	return &Buffer{Samples: s, Rate: b.Rate}
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.Rate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.Rate)
}

// Peak returns the maximum absolute sample value.
func (b *Buffer) Peak() float64 {
	var peak float64
	for _, s := range b.Samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// Normalize returns a copy of in scaled so its peak absolute value is 1.
// Normalizing an already normalized buffer is a no-op. An all-zero (or
// empty) buffer cannot be normalized and yields ErrSilentBuffer.
func Normalize(in *Buffer) (*Buffer, error) {
	peak := in.Peak()
	if peak == 0 {
		return nil, fmt.Errorf("normalize: %w", ErrSilentBuffer)
	}
	out := in.Clone()
	for i := range out.Samples {
		out.Samples[i] /= peak
	}
	return out, nil
}
