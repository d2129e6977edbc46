// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

// a 21-cell track maps cells 0..20 onto ratios 0..1 in steps of 0.05
const testTrackWidth = 21

func newTestBar() *SeekBar {
	s := NewSeekBar()
	s.SetRect(0, 0, testTrackWidth, 1)
	return s
}

func mouse(s *SeekBar, action tview.MouseAction, x, y int) (bool, tview.Primitive) {
	var buttons tcell.ButtonMask
	if action == tview.MouseLeftDown {
		buttons = tcell.Button1
	}
	return s.MouseHandler()(action, tcell.NewEventMouse(x, y, buttons, tcell.ModNone), func(p tview.Primitive) {})
}

func press(s *SeekBar, key tcell.Key) {
	s.InputHandler()(tcell.NewEventKey(key, 0, tcell.ModNone), func(p tview.Primitive) {})
}

type failMapper struct{}

func (failMapper) MapToRatio(track Rect, x, y int) (float64, bool) { return 0, false }

func TestDirectSeek(t *testing.T) {
	s := newTestBar()
	var seeks []float64
	s.SetSeekedFunc(func(r float64) { seeks = append(seeks, r) })

	// cell 6 of 0..20 is ratio 0.3; the handle sits at 0, so this press
	// lands on the unoccupied track
	consumed, _ := mouse(s, tview.MouseLeftDown, 6, 0)
	assert.True(t, consumed)
	assert.Equal(t, 0.3, s.Position())
	assert.Equal(t, []float64{0.3}, seeks, "one click raises the seek event exactly once")

	mouse(s, tview.MouseLeftUp, 6, 0)
	assert.Equal(t, 0.3, s.Position())
}

func TestDragSession(t *testing.T) {
	s := newTestBar()
	s.SetPosition(0.5)
	var seeks []float64
	s.SetSeekedFunc(func(r float64) { seeks = append(seeks, r) })

	// press on the handle (cell 10) starts a drag instead of seeking
	consumed, capture := mouse(s, tview.MouseLeftDown, 10, 0)
	assert.True(t, consumed)
	assert.Equal(t, s, capture, "a drag session must capture the mouse")
	assert.Empty(t, seeks)

	// every accepted move commits and notifies
	mouse(s, tview.MouseMove, 14, 0)
	assert.Equal(t, 0.7, s.Position())
	assert.Equal(t, []float64{0.7}, seeks)

	mouse(s, tview.MouseMove, 16, 0)
	assert.Equal(t, 0.8, s.Position())
	assert.Equal(t, []float64{0.7, 0.8}, seeks)

	// the session survives the pointer leaving the widget; positions
	// beyond the track clamp to the bounds
	consumed, capture = mouse(s, tview.MouseMove, 99, 5)
	assert.True(t, consumed)
	assert.Equal(t, s, capture)
	assert.Equal(t, 1.0, s.Position())

	// release outside drops back to idle, committed value untouched
	mouse(s, tview.MouseLeftUp, 99, 5)
	assert.False(t, s.handle.visible)
	assert.Equal(t, 1.0, s.Position())
}

func TestDragOffsetStaysFixed(t *testing.T) {
	s := newTestBar()
	s.SetPosition(0.5)
	var last float64
	s.SetSeekedFunc(func(r float64) { last = r })

	mouse(s, tview.MouseLeftDown, 10, 0)
	// moving the pointer to cell 14 with a zero press offset maps the
	// handle to exactly that cell on every move
	mouse(s, tview.MouseMove, 14, 0)
	assert.Equal(t, 0.7, last)
	mouse(s, tview.MouseMove, 4, 0)
	assert.Equal(t, 0.2, last)
	mouse(s, tview.MouseLeftUp, 4, 0)
}

func TestMappingFailureAbortsUpdateOnly(t *testing.T) {
	s := newTestBar()
	seeks := 0
	s.SetSeekedFunc(func(float64) { seeks++ })
	s.SetMapper(failMapper{})

	mouse(s, tview.MouseLeftDown, 6, 0)
	assert.Equal(t, 0.0, s.Position())
	assert.Equal(t, 0, seeks)

	// recovery on the next valid event
	s.SetMapper(CellMapper{})
	mouse(s, tview.MouseLeftUp, 6, 0)
	mouse(s, tview.MouseLeftDown, 6, 0)
	assert.Equal(t, 0.3, s.Position())
	assert.Equal(t, 1, seeks)
}

func TestDegenerateGeometry(t *testing.T) {
	s := newTestBar()
	s.SetPosition(0.5)
	seeks := 0
	s.SetSeekedFunc(func(float64) { seeks++ })

	// start a drag, then collapse the track mid-session
	mouse(s, tview.MouseLeftDown, 10, 0)
	s.SetRect(0, 0, 0, 1)
	mouse(s, tview.MouseMove, 14, 0)
	assert.Equal(t, 0.5, s.Position(), "zero-width track must leave the position unchanged")
	assert.Equal(t, 0, seeks)
	mouse(s, tview.MouseLeftUp, 14, 0)

	// keyboard updates obey the same rule
	press(s, tcell.KeyLeft)
	assert.Equal(t, 0.5, s.Position())
	assert.Equal(t, 0, seeks)
}

func TestKeyboardStepper(t *testing.T) {
	s := newTestBar()
	s.SetPosition(0.5)
	var seeks []float64
	s.SetSeekedFunc(func(r float64) { seeks = append(seeks, r) })

	press(s, tcell.KeyLeft)
	assert.InDelta(t, 0.45, s.Position(), 1e-9)
	assert.Len(t, seeks, 1)

	press(s, tcell.KeyRight)
	assert.InDelta(t, 0.5, s.Position(), 1e-9)
	assert.Len(t, seeks, 2)

	// steps clamp at the bounds
	s.SetPosition(0.02)
	press(s, tcell.KeyLeft)
	assert.Equal(t, 0.0, s.Position())
	s.SetPosition(0.98)
	press(s, tcell.KeyRight)
	assert.Equal(t, 1.0, s.Position())

	// vertical input is not interpreted as stepping
	before := s.Position()
	press(s, tcell.KeyUp)
	press(s, tcell.KeyDown)
	assert.Equal(t, before, s.Position())
}

func TestKeyboardManualModeForwards(t *testing.T) {
	s := newTestBar()
	s.SetPosition(0.5)
	seeks := 0
	s.SetSeekedFunc(func(float64) { seeks++ })
	s.SetNavigationModeFunc(func() NavigationMode { return NavigationManual })

	press(s, tcell.KeyLeft)
	press(s, tcell.KeyRight)
	assert.Equal(t, 0.5, s.Position(), "manual mode must leave directional input to the host")
	assert.Equal(t, 0, seeks)
}

func TestDisabledIgnoresInput(t *testing.T) {
	s := newTestBar()
	s.SetDisabled(true)
	seeks := 0
	s.SetSeekedFunc(func(float64) { seeks++ })

	mouse(s, tview.MouseLeftDown, 6, 0)
	press(s, tcell.KeyRight)
	assert.Equal(t, 0.0, s.Position())
	assert.Equal(t, 0, seeks)
}

func TestProgrammaticPositionRaisesNoEvent(t *testing.T) {
	s := newTestBar()
	seeks := 0
	s.SetSeekedFunc(func(float64) { seeks++ })

	s.SetPosition(0.6)
	assert.Equal(t, 0.6, s.Position())
	s.SetPosition(1.7)
	assert.Equal(t, 1.0, s.Position())
	assert.Equal(t, 0, seeks, "syncing playback progress must not look like user seeking")
}

func TestHoverPreview(t *testing.T) {
	s := newTestBar()
	s.SetPosition(0.5)
	formats := 0
	s.SetFormatFunc(func(r float64) string {
		formats++
		return fmt.Sprintf("%.2f", r)
	})

	// enter and hover over cell 6 (ratio 0.3)
	mouse(s, tview.MouseMove, 6, 0)
	assert.True(t, s.handle.visible)

	assert.True(t, s.Tick())
	assert.Equal(t, 0.3, s.PreviewPosition())
	assert.Equal(t, "0.30", s.tooltip.text)
	assert.Equal(t, 1, formats)

	// unchanged pointer position skips the visual update and formatting
	assert.False(t, s.Tick())
	assert.Equal(t, 1, formats)

	mouse(s, tview.MouseMove, 8, 0)
	assert.True(t, s.Tick())
	assert.Equal(t, 0.4, s.PreviewPosition())
	assert.Equal(t, 2, formats)

	// hover-exit resets the preview and hides handle and tooltip, but
	// the committed position is untouched
	mouse(s, tview.MouseMove, 6, 2)
	assert.Equal(t, 0.0, s.PreviewPosition())
	assert.False(t, s.handle.visible)
	assert.False(t, s.tooltip.active)
	assert.Equal(t, 0.5, s.Position())
}

func TestPreviewSkippedWhileDragging(t *testing.T) {
	s := newTestBar()
	s.SetPosition(0.5)
	formats := 0
	s.SetFormatFunc(func(r float64) string {
		formats++
		return ""
	})

	mouse(s, tview.MouseMove, 10, 0)
	mouse(s, tview.MouseLeftDown, 10, 0)
	mouse(s, tview.MouseMove, 14, 0)

	assert.False(t, s.Tick(), "preview must not run while dragging")
	// the drag commit snapped the preview onto the committed value
	assert.Equal(t, 0.7, s.PreviewPosition())

	mouse(s, tview.MouseLeftUp, 14, 0)
	mouse(s, tview.MouseMove, 4, 0)
	assert.True(t, s.Tick(), "hovering resumes after the session ends")
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	assert.NoError(t, screen.Init())
	screen.SetSize(30, 3)
	defer screen.Fini()

	s := NewSeekBar()
	s.SetRect(0, 0, 21, 1)
	s.SetPosition(0.5)
	mouse(s, tview.MouseMove, 6, 0)
	s.Tick()

	assert.NotPanics(t, func() { s.Draw(screen) })

	// the handle sits at the committed position
	ch, _, _, _ := screen.GetContent(10, 0)
	assert.Equal(t, '◆', ch)
}
