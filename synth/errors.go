// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidParameter reports a non-finite, non-positive or otherwise
	// out-of-domain numeric input.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidOscillatorType reports an unrecognized waveform variant.
	ErrInvalidOscillatorType = errors.New("invalid oscillator type")
	// ErrSilentBuffer reports normalization of an all-zero buffer.
	ErrSilentBuffer = errors.New("silent buffer")
	// ErrDegenerateEnvelope reports an ADSR whose attack, decay and release
	// spans together exceed the buffer length.
	ErrDegenerateEnvelope = errors.New("degenerate envelope")
)
