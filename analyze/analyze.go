// SPDX-License-Identifier: EPL-2.0

package analyze

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arlorostirolla/swarmsynth/synth"
	"github.com/arlorostirolla/swarmsynth/utils"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Pitch search range in Hz.
const (
	minPitch = 50.0
	maxPitch = 2000.0
)

// Info describes a recording: estimated fundamental pitch in Hz, length in
// seconds, and sample rate.
type Info struct {
	Pitch    float64
	Duration float64
	Rate     int
}

// Buffer estimates pitch and duration of buf. A silent buffer has no pitch
// and yields synth.ErrSilentBuffer.
func Buffer(buf *synth.Buffer) (Info, error) {
	if buf.Rate <= 0 {
		return Info{}, fmt.Errorf("analyze: %w: sample rate %d", synth.ErrInvalidParameter, buf.Rate)
	}
	if buf.Peak() == 0 {
		return Info{}, fmt.Errorf("analyze: %w", synth.ErrSilentBuffer)
	}
	return Info{
		Pitch:    estimatePitch(buf.Samples, buf.Rate),
		Duration: buf.Duration(),
		Rate:     buf.Rate,
	}, nil
}

// File loads the recording at path, dispatching on its extension, and
// analyzes it.
func File(path string) (Info, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	loader, ok := defaultRegistry.Get(ext)
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("analyze: %w", err)
	}
	defer f.Close()

	buf, err := loader(f)
	if err != nil {
		return Info{}, err
	}
	return Buffer(buf)
}

// estimatePitch finds the autocorrelation peak over lags covering the
// 50-2000 Hz range. Returns 0 when the buffer is too short for the search
// window.
func estimatePitch(samples []float64, rate int) float64 {
	minLag := int(float64(rate) / maxPitch)
	maxLag := int(float64(rate) / minPitch)
	if minLag < 1 {
		minLag = 1
	}
	if maxLag > len(samples)-1 {
		maxLag = len(samples) - 1
	}
	if maxLag < minLag {
		return 0
	}

	corr := make([]float64, maxLag+1)
	bestLag := 0
	best := 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		var c float64
		for i := 0; i+lag < len(samples); i++ {
			c += samples[i] * samples[i+lag]
		}
		corr[lag] = c
		if c > best {
			best, bestLag = c, lag
		}
	}
	if bestLag == 0 {
		return 0
	}
	return float64(rate) / refinePeak(corr, bestLag, minLag, maxLag)
}

// refinePeak searches the cubic interpolation of the correlation curve
// around the integer peak for a fractional lag with a higher value.
func refinePeak(corr []float64, lag, minLag, maxLag int) float64 {
	if lag-2 < minLag || lag+2 > maxLag {
		return float64(lag)
	}

	bestLag := float64(lag)
	best := corr[lag]
	const steps = 100
	for seg := -1; seg <= 0; seg++ {
		y0 := corr[lag+seg-1]
		y1 := corr[lag+seg]
		y2 := corr[lag+seg+1]
		y3 := corr[lag+seg+2]
		for i := 1; i < steps; i++ {
			x := float64(i) / steps
			if v := utils.CubicInterpolate(y0, y1, y2, y3, x); v > best {
				best = v
				bestLag = float64(lag+seg) + x
			}
		}
	}
	return bestLag
}
