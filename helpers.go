// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import "fmt"

func secondsToMinAndSec(seconds int64) (int64, int64) {
	return seconds / 60, seconds % 60
}

// formatTime renders seconds as mm:ss, or h:mm:ss past one hour.
func formatTime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes, secs := secondsToMinAndSec(seconds)
	if minutes >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", minutes/60, minutes%60, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// formatRatioTime renders a normalized track position as a time label,
// given the track duration in seconds. This is the seek bar's tooltip
// formatter.
func formatRatioTime(ratio float64, duration int64) string {
	if duration <= 0 {
		return formatTime(0)
	}
	return formatTime(int64(ratio * float64(duration)))
}
