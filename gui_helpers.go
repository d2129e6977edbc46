// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/solarwinter/tempo/mpvplayer"
)

func makeModal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}

func formatPlayerStatus(volume int64, position int64, duration int64) string {
	if position < 0 {
		position = 0
	}
	if duration < 0 {
		duration = 0
	}

	return fmt.Sprintf("[%d%%][::b][%s/%s]", volume, formatTime(position), formatTime(duration))
}

func formatTrackForStatusBar(currentTrack *mpvplayer.Track) (text string) {
	if currentTrack == nil {
		return
	}
	if currentTrack.Title != "" {
		text += "[::-] [white]" + tview.Escape(currentTrack.Title)
	}
	if currentTrack.Artist != "" {
		text += " [gray]by [white]" + tview.Escape(currentTrack.Artist)
	}
	return
}
