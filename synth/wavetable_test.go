// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestGenerateBank_Shape(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	amps := []float64{1, 0.5, 0.25, 0.125}

	tables, err := GenerateBank(rng, amps, 4, 8, 2048)
	if err != nil {
		t.Fatalf("GenerateBank() error = %v", err)
	}

	if len(tables) != 8 {
		t.Fatalf("got %d tables, want 8", len(tables))
	}
	for i, table := range tables {
		if len(table) != 2048 {
			t.Fatalf("table %d has %d samples, want 2048", i, len(table))
		}
	}
}

func TestGenerateBank_PeakNormalized(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	tables, err := GenerateBank(rng, []float64{1, 0.7, 0.3}, 3, 4, 1024)
	if err != nil {
		t.Fatalf("GenerateBank() error = %v", err)
	}

	for i, table := range tables {
		var peak float64
		for _, v := range table {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		if peak != 1 {
			t.Errorf("table %d peak = %v, want 1", i, peak)
		}
	}
}

func TestGenerateBank_SeededReproducibility(t *testing.T) {
	t.Parallel()

	amps := []float64{1, 0.5, 0.25}
	first, err := GenerateBank(rand.New(rand.NewSource(42)), amps, 3, 4, 256)
	if err != nil {
		t.Fatalf("GenerateBank() error = %v", err)
	}
	second, err := GenerateBank(rand.New(rand.NewSource(42)), amps, 3, 4, 256)
	if err != nil {
		t.Fatalf("GenerateBank() error = %v", err)
	}

	for i := range first {
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("table %d sample %d differs across seeded runs", i, j)
			}
		}
	}

	third, err := GenerateBank(rand.New(rand.NewSource(43)), amps, 3, 4, 256)
	if err != nil {
		t.Fatalf("GenerateBank() error = %v", err)
	}
	same := true
	for i := range first {
		for j := range first[i] {
			if first[i][j] != third[i][j] {
				same = false
			}
		}
	}
	if same {
		t.Error("different seeds produced an identical bank")
	}
}

func TestGenerateBank_ZeroTables(t *testing.T) {
	t.Parallel()

	tables, err := GenerateBank(rand.New(rand.NewSource(1)), []float64{1}, 1, 0, 64)
	if err != nil {
		t.Fatalf("GenerateBank() error = %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("got %d tables, want 0", len(tables))
	}
}

func TestGenerateBank_ZeroAmplitudes(t *testing.T) {
	t.Parallel()

	_, err := GenerateBank(rand.New(rand.NewSource(1)), []float64{0, 0}, 2, 1, 64)
	if !errors.Is(err, ErrSilentBuffer) {
		t.Errorf("GenerateBank() error = %v, want ErrSilentBuffer", err)
	}
}

func TestGenerateBank_InvalidArguments(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		run  func() error
	}{
		{"nil rng", func() error {
			_, err := GenerateBank(nil, []float64{1}, 1, 1, 64)
			return err
		}},
		{"amplitude count mismatch", func() error {
			_, err := GenerateBank(rng, []float64{1, 0.5}, 3, 1, 64)
			return err
		}},
		{"zero harmonics", func() error {
			_, err := GenerateBank(rng, nil, 0, 1, 64)
			return err
		}},
		{"zero table size", func() error {
			_, err := GenerateBank(rng, []float64{1}, 1, 1, 0)
			return err
		}},
		{"negative table count", func() error {
			_, err := GenerateBank(rng, []float64{1}, 1, -1, 64)
			return err
		}},
		{"NaN amplitude", func() error {
			_, err := GenerateBank(rng, []float64{math.NaN()}, 1, 1, 64)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestTable_At(t *testing.T) {
	t.Parallel()

	n := 1024
	table := make(Table, n)
	for i := range table {
		table[i] = math.Sin(twoPi * float64(i) / float64(n))
	}

	// Exact grid positions hit the stored samples.
	for _, i := range []int{0, 1, 256, 512, 1023} {
		phase := float64(i) / float64(n)
		if got := table.At(phase); got != table[i] {
			t.Errorf("At(%v) = %v, want %v", phase, got, table[i])
		}
	}

	// Phase wraps in both directions.
	if got, want := table.At(1.25), table.At(0.25); got != want {
		t.Errorf("At(1.25) = %v, want At(0.25) = %v", got, want)
	}
	if got, want := table.At(-0.75), table.At(0.25); got != want {
		t.Errorf("At(-0.75) = %v, want At(0.25) = %v", got, want)
	}

	// Between samples the interpolation tracks the underlying sine closely.
	phase := 100.5 / float64(n)
	if got, want := table.At(phase), math.Sin(twoPi*phase); math.Abs(got-want) > 1e-6 {
		t.Errorf("At(%v) = %v, want ~%v", phase, got, want)
	}
}

func TestTable_AtEmpty(t *testing.T) {
	t.Parallel()

	if got := (Table{}).At(0.3); got != 0 {
		t.Errorf("At() on empty table = %v, want 0", got)
	}
}

func BenchmarkGenerateBank(b *testing.B) {
	amps := []float64{1, 0.5, 0.25, 0.125, 0.0625, 0.03125, 0.015625, 0.0078125}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = GenerateBank(rand.New(rand.NewSource(1)), amps, 8, 16, 2048)
	}
}
