// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

// Rect is the track geometry pointer coordinates are mapped against.
// It uses terminal cell coordinates, the same space tcell mouse events
// report positions in.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Mapper converts a screen-space point into a ratio along a track
// rectangle's horizontal axis. The boolean result is false when the point
// cannot be resolved (degenerate geometry); callers must treat that as
// "skip this update" rather than an error.
type Mapper interface {
	MapToRatio(track Rect, x, y int) (float64, bool)
}

// CellMapper maps terminal cell coordinates linearly onto [0,1]: the
// track's first cell is 0, its last cell is 1. Points outside the track
// are clamped, not rejected, so drags past either end pin to the bounds.
type CellMapper struct{}

func (CellMapper) MapToRatio(track Rect, x, y int) (float64, bool) {
	if track.Width <= 0 {
		return 0, false
	}
	if track.Width == 1 {
		// single-cell track, every point is the origin
		return 0, true
	}
	ratio := float64(x-track.X) / float64(track.Width-1)
	return clamp(ratio), true
}
