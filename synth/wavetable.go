// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/arlorostirolla/swarmsynth/utils"
)

// Table holds one peak-normalized cycle of a periodic waveform.
type Table []float64

// At looks up the table at phase in cycles, cubic-interpolated and wrapped.
// It is a convenience for consumers that play tables back; generation never
// calls it.
func (t Table) At(phase float64) float64 {
	n := len(t)
	if n == 0 {
		return 0
	}
	pos := (phase - math.Floor(phase)) * float64(n)
	i := int(pos)
	frac := pos - float64(i)
	y0 := t[(i-1+n)%n]
	y1 := t[i%n]
	y2 := t[(i+1)%n]
	y3 := t[(i+2)%n]
	return utils.CubicInterpolate(y0, y1, y2, y3, frac)
}

// GenerateBank builds numTables independent wavetables of tableSize samples.
// Each table sums sine harmonics 1..numHarmonics with weights drawn
// uniformly from [0, 1) and scaled by harmonicAmps (one amplitude per
// harmonic), then peak-normalizes. rng is required so callers control
// seeding; a fixed seed reproduces the bank exactly.
func GenerateBank(rng *rand.Rand, harmonicAmps []float64, numHarmonics, numTables, tableSize int) ([]Table, error) {
	if rng == nil {
		return nil, fmt.Errorf("wavetable: %w: nil random source", ErrInvalidParameter)
	}
	if numHarmonics <= 0 || numTables < 0 || tableSize <= 0 {
		return nil, fmt.Errorf("wavetable: %w: %d harmonics, %d tables of %d samples",
			ErrInvalidParameter, numHarmonics, numTables, tableSize)
	}
	if len(harmonicAmps) != numHarmonics {
		return nil, fmt.Errorf("wavetable: %w: %d amplitudes for %d harmonics",
			ErrInvalidParameter, len(harmonicAmps), numHarmonics)
	}
	for _, a := range harmonicAmps {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, fmt.Errorf("wavetable: %w: non-finite amplitude", ErrInvalidParameter)
		}
	}

	tables := make([]Table, 0, numTables)
	for t := 0; t < numTables; t++ {
		weights := make([]float64, numHarmonics)
		for h := range weights {
			weights[h] = rng.Float64() * harmonicAmps[h]
		}

		table := make(Table, tableSize)
		for h := 1; h <= numHarmonics; h++ {
			w := weights[h-1]
			for i := range table {
				table[i] += w * math.Sin(twoPi*float64(h)*float64(i)/float64(tableSize))
			}
		}

		var peak float64
		for _, v := range table {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		if peak == 0 {
			return nil, fmt.Errorf("wavetable: %w", ErrSilentBuffer)
		}
		for i := range table {
			table[i] /= peak
		}
		tables = append(tables, table)
	}
	return tables, nil
}
