// SPDX-License-Identifier: EPL-2.0

// Package analyze estimates pitch and duration of an existing recording.
//
// The estimate drives parameter-search callers that need a target pitch to
// resynthesize. Pitch is found by autocorrelation over the
// 50-2000 Hz range, with the peak lag refined by cubic interpolation for
// sub-sample precision.
//
//	f, _ := os.Open("sample.wav")
//	buf, _ := wav.Load(f)
//	info, err := analyze.Buffer(buf)
//	// info.Pitch, info.Duration, info.Rate
//
// File dispatches on the file extension through a loader registry with
// wav, aiff, mp3 and ogg pre-registered:
//
//	info, err := analyze.File("sample.mp3")
package analyze
