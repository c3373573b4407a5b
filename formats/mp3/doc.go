// SPDX-License-Identifier: EPL-2.0

// Package mp3 loads MP3 recordings into mono sample buffers, backed by
// github.com/hajimehoshi/go-mp3. The decoder always yields 16-bit stereo
// PCM; Load averages the two channels.
package mp3
