// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

// previewTracker holds the speculative hover-only position. It is
// recomputed every tick while hovering and reset on hover-exit; it never
// feeds the seek event.
type previewTracker struct {
	value float64
}

// update stores candidate and reports whether it differed from the
// previous value. Unchanged candidates short-circuit so the tick loop
// skips redundant visual updates and formatting work.
func (p *previewTracker) update(candidate float64) bool {
	if candidate == p.value {
		return false
	}
	p.value = candidate
	return true
}

func (p *previewTracker) reset() {
	p.value = 0
}

// Tick recomputes the preview position from the last observed pointer
// location. The owning update loop calls this once per scheduling tick;
// it only does work while the widget is hovered and no drag is active,
// so drag commits always take visual precedence over stale preview data.
// It returns whether anything changed, letting the caller skip redraws.
func (s *SeekBar) Tick() bool {
	if s.state != stateHovering {
		return false
	}
	candidate, ok := s.mapper.MapToRatio(s.trackRect(), s.mouseX, s.mouseY)
	if !ok {
		return false
	}
	if !s.preview.update(candidate) {
		return false
	}
	Bind(s.previewMark, candidate)
	if s.formatFunc != nil {
		s.tooltip.SetText(s.formatFunc(candidate))
	}
	return true
}
