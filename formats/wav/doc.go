// SPDX-License-Identifier: EPL-2.0

// Package wav loads WAV recordings into sample buffers and writes rendered
// buffers back out as 16-bit PCM WAV.
//
// Load decodes a whole file at once and averages multichannel input down to
// mono, matching the engine's offline, whole-buffer model:
//
//	f, _ := os.Open("input.wav")
//	buf, err := wav.Load(f)
//
// Write encodes a rendered buffer:
//
//	out, _ := os.Create("voice.wav")
//	err := wav.Write(out, buf)
//
// Decoding and encoding are backed by github.com/go-audio/wav.
package wav
