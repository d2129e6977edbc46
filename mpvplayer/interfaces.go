// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

type UiEventType int

const (
	// playback stopped at end of queue, data: nil
	EventStopped UiEventType = iota
	// new track started playing, data: Track
	EventPlaying
	// unpaused/paused track, data: Track
	EventUnpaused
	EventPaused
	// UI progress update, data: StatusData
	EventStatus
)

type UiEvent struct {
	Type UiEventType
	Data interface{}
}

// StatusData is a player progress report for the UI.
type StatusData struct {
	Volume   int64
	Position int64
	Duration int64
}

type EventConsumer interface {
	// receives events going from the mpv backend (this package) to a UI frontend
	SendEvent(event UiEvent)
}
