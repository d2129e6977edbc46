// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelClamping(t *testing.T) {
	m := NewModel(nil, nil)

	for _, v := range []float64{-1, -0.001, 0, 0.5, 1, 1.001, 42, math.Inf(-1), math.Inf(1), math.NaN()} {
		m.Set(v, true)
		stored := m.Get()
		assert.True(t, stored >= 0 && stored <= 1, "Set(%v) stored %v outside [0,1]", v, stored)
	}

	m.Set(0.25, true)
	assert.Equal(t, 0.25, m.Get())
	m.Set(-3, true)
	assert.Equal(t, 0.0, m.Get())
	m.Set(3, true)
	assert.Equal(t, 1.0, m.Get())
}

func TestModelIdempotence(t *testing.T) {
	refreshes := 0
	m := NewModel(func() { refreshes++ }, nil)

	assert.True(t, m.Set(0.3, true))
	assert.False(t, m.Set(0.3, true), "storing the same value must be a no-op")
	assert.Equal(t, 1, refreshes, "same value twice must trigger exactly one refresh")

	// clamped duplicates count as equal too
	m.Set(1.0, true)
	refreshes = 0
	m.Set(2.5, true)
	assert.Equal(t, 0, refreshes)
}

func TestModelNotifyGatesCommitPath(t *testing.T) {
	refreshes, commits := 0, 0
	m := NewModel(func() { refreshes++ }, func() { commits++ })

	m.Set(0.4, false)
	assert.Equal(t, 1, refreshes)
	assert.Equal(t, 0, commits, "notify=false must skip the commit-origin path")

	m.Set(0.6, true)
	assert.Equal(t, 2, refreshes)
	assert.Equal(t, 1, commits)

	// no-op change fires neither
	m.Set(0.6, true)
	assert.Equal(t, 2, refreshes)
	assert.Equal(t, 1, commits)
}
