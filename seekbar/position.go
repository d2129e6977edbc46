// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

import "math"

// Model owns the committed normalized position. It is the single source
// of truth for "where playback currently is" as shown by the widget and
// is only ever mutated through Set.
//
// The model never raises the widget's seek event itself; that is the job
// of whichever caller performed a user-driven change. It only drives the
// visual refresh callbacks.
type Model struct {
	value float64

	// onRefresh runs after every stored change.
	onRefresh func()
	// onCommit additionally runs for changes flagged as user commits.
	onCommit func()
}

// NewModel returns a model at position 0. Either callback may be nil.
func NewModel(onRefresh, onCommit func()) *Model {
	return &Model{onRefresh: onRefresh, onCommit: onCommit}
}

// Set clamps v to [0,1] and stores it. Storing the value already held is
// a strict no-op: no refresh, no commit callback. It returns whether the
// stored value changed.
func (m *Model) Set(v float64, notify bool) bool {
	v = clamp(v)
	if v == m.value {
		return false
	}
	m.value = v
	if m.onRefresh != nil {
		m.onRefresh()
	}
	if notify && m.onCommit != nil {
		m.onCommit()
	}
	return true
}

// Get returns the committed position.
func (m *Model) Get() float64 {
	return m.value
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
