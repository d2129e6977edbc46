// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

// ControlledPlayer is the player surface a remote-control frontend
// drives. Seeking goes through the same paths as the seek bar widget,
// so remote seeks and widget seeks are indistinguishable to the engine.
type ControlledPlayer interface {
	// Registers a callback which is invoked when the player transitions to the Paused state.
	OnPaused(cb func())

	// Registers a callback which is invoked when the player transitions to the Stopped state.
	OnStopped(cb func())

	// Registers a callback which is invoked when the player transitions to the Playing state.
	OnPlaying(cb func())

	// Registers a callback which is invoked whenever a seek event occurs.
	OnSeek(cb func())

	IsPaused() (bool, error)
	IsPlaying() (bool, error)

	// GetTimePos returns the playback position in seconds.
	GetTimePos() float64
	// GetDuration returns the current track duration in seconds.
	GetDuration() float64

	Pause() error
	Stop() error
	PlayNextTrack() error
	SetVolume(percent int64) error

	// Seek jumps relative by increment seconds.
	Seek(increment int) error
	// SeekPercent jumps to an absolute position as a percentage of the
	// track duration.
	SeekPercent(percent float64) error
}

type TrackInterface interface {
	GetArtist() string
	GetTitle() string
	GetDuration() int
	GetUri() string

	// something like Uri != ""
	IsValid() bool
}
