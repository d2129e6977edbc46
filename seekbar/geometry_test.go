// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellMapper(t *testing.T) {
	m := CellMapper{}
	track := Rect{X: 10, Y: 2, Width: 21, Height: 1}

	t.Run("endpoints and midpoint", func(t *testing.T) {
		ratio, ok := m.MapToRatio(track, 10, 2)
		assert.True(t, ok)
		assert.Equal(t, 0.0, ratio)

		ratio, ok = m.MapToRatio(track, 30, 2)
		assert.True(t, ok)
		assert.Equal(t, 1.0, ratio)

		ratio, ok = m.MapToRatio(track, 20, 2)
		assert.True(t, ok)
		assert.Equal(t, 0.5, ratio)
	})

	t.Run("points beyond the track clamp", func(t *testing.T) {
		ratio, ok := m.MapToRatio(track, 5, 2)
		assert.True(t, ok)
		assert.Equal(t, 0.0, ratio)

		ratio, ok = m.MapToRatio(track, 99, 2)
		assert.True(t, ok)
		assert.Equal(t, 1.0, ratio)
	})

	t.Run("degenerate geometry fails", func(t *testing.T) {
		_, ok := m.MapToRatio(Rect{X: 0, Y: 0, Width: 0, Height: 1}, 0, 0)
		assert.False(t, ok)

		_, ok = m.MapToRatio(Rect{X: 0, Y: 0, Width: -4, Height: 1}, 0, 0)
		assert.False(t, ok)
	})

	t.Run("single cell track maps to origin", func(t *testing.T) {
		ratio, ok := m.MapToRatio(Rect{X: 3, Y: 0, Width: 1, Height: 1}, 3, 0)
		assert.True(t, ok)
		assert.Equal(t, 0.0, ratio)
	})
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 5, Height: 2}

	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(6, 2))
	assert.False(t, r.Contains(7, 1))
	assert.False(t, r.Contains(2, 3))
	assert.False(t, r.Contains(1, 1))

	assert.False(t, Rect{}.Contains(0, 0))
}
