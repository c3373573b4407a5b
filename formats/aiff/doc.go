// SPDX-License-Identifier: EPL-2.0

// Package aiff loads AIFF recordings into mono sample buffers, backed by
// github.com/go-audio/aiff.
package aiff
