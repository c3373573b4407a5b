// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic signal builders for tests.
// Builders return bare sample slices so the package stays import-cycle free.
package audiotest

import "math"

// Sine generates n samples of a sine wave at freq Hz.
func Sine(rate, n int, freq float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		t := float64(i) / float64(rate)
		s[i] = math.Sin(2 * math.Pi * freq * t)
	}
	return s
}

// Impulse generates n samples that are zero except for a single unit sample
// at position.
func Impulse(n, position int) []float64 {
	s := make([]float64, n)
	if position >= 0 && position < n {
		s[position] = 1
	}
	return s
}

// Constant generates n samples of the given value.
func Constant(n int, value float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = value
	}
	return s
}

// Silence generates n zero samples.
func Silence(n int) []float64 {
	return make([]float64, n)
}

// Energy returns the sum of squared samples.
func Energy(s []float64) float64 {
	var sum float64
	for _, v := range s {
		sum += v * v
	}
	return sum
}
