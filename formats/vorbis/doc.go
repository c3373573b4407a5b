// SPDX-License-Identifier: EPL-2.0

// Package vorbis loads Ogg Vorbis recordings into mono sample buffers,
// backed by github.com/jfreymuth/oggvorbis.
package vorbis
