// SPDX-License-Identifier: EPL-2.0

// Package playback drives an audio output engine through a small
// state machine with pause, resume and fraction-based seeking.
package playback
