// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solarwinter/tempo/mpvplayer"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "00:00", formatTime(0))
	assert.Equal(t, "00:42", formatTime(42))
	assert.Equal(t, "04:05", formatTime(245))
	assert.Equal(t, "59:59", formatTime(3599))
	assert.Equal(t, "1:00:00", formatTime(3600))
	assert.Equal(t, "2:03:04", formatTime(7384))

	// negative positions can show up transiently during track changes
	assert.Equal(t, "00:00", formatTime(-10))
}

func TestFormatRatioTime(t *testing.T) {
	assert.Equal(t, "00:00", formatRatioTime(0, 200))
	assert.Equal(t, "01:40", formatRatioTime(0.5, 200))
	assert.Equal(t, "03:20", formatRatioTime(1, 200))

	// unknown duration renders as zero rather than garbage
	assert.Equal(t, "00:00", formatRatioTime(0.5, 0))
	assert.Equal(t, "00:00", formatRatioTime(0.5, -1))
}

func TestFormatPlayerStatus(t *testing.T) {
	assert.Equal(t, "[100%][::b][00:10/03:20]", formatPlayerStatus(100, 10, 200))

	// mpv reports negative values around track boundaries
	assert.Equal(t, "[50%][::b][00:00/00:00]", formatPlayerStatus(50, -5, -1))
}

func TestFormatTrackForStatusBar(t *testing.T) {
	assert.Equal(t, "", formatTrackForStatusBar(nil))

	track := &mpvplayer.Track{Title: "Song", Artist: "Band"}
	text := formatTrackForStatusBar(track)
	assert.Contains(t, text, "Song")
	assert.Contains(t, text, "Band")

	titleOnly := &mpvplayer.Track{Title: "Song"}
	assert.Contains(t, formatTrackForStatusBar(titleOnly), "Song")
	assert.NotContains(t, formatTrackForStatusBar(titleOnly), "by")
}
