// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

// Package seekbar provides an interactive scrubber widget for selecting
// a normalized position (0..1) within a timed media stream.
//
// The widget tracks two positions: the committed position, owned by
// Model and shown as a filled track plus a drag handle, and a hover-only
// preview position recomputed once per scheduling tick and shown as a
// marker with a formatted tooltip. User-driven commits (direct click,
// drag move, keyboard step) raise the seeked callback; programmatic
// SetPosition never does.
package seekbar

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NavigationMode is reported by the surrounding focus-navigation system.
// In automatic mode, left/right directional input steps the committed
// position; in manual mode all directional input is left for the host.
type NavigationMode int

const (
	NavigationAutomatic NavigationMode = iota
	NavigationManual
)

// DefaultStep is the committed-position increment for one keyboard step.
const DefaultStep = 0.05

type dragState int

const (
	stateIdle dragState = iota
	stateHovering
	stateDragging
)

// SeekBar is a one-row tview primitive. Pointer and keyboard input move
// the committed position through its Model; the host observes commits
// via SetSeekedFunc and syncs playback progress back in with
// SetPosition.
type SeekBar struct {
	*tview.Box

	model   *Model
	mapper  Mapper
	preview previewTracker

	state dragState
	// drag session, valid while dragging is true
	dragging    bool
	dragOffsetX int
	// last observed pointer position, consumed by the preview tick
	mouseX, mouseY int

	// bound visuals
	fill        *fillVisual
	previewMark *markerVisual
	handle      *markerVisual
	tooltip     *tooltipVisual

	disabled bool
	step     float64

	seekedFunc  func(ratio float64)
	formatFunc  func(ratio float64) string
	navModeFunc func() NavigationMode

	trackStyle   tcell.Style
	fillStyle    tcell.Style
	previewStyle tcell.Style
	handleStyle  tcell.Style
	tooltipStyle tcell.Style
}

// NewSeekBar returns an enabled seek bar at position 0.
func NewSeekBar() *SeekBar {
	s := &SeekBar{
		Box:    tview.NewBox(),
		mapper: CellMapper{},
		step:   DefaultStep,

		fill:        &fillVisual{visible: true},
		previewMark: &markerVisual{},
		handle:      &markerVisual{},
		tooltip:     &tooltipVisual{},

		trackStyle:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		fillStyle:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
		previewStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		handleStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		tooltipStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
	}
	s.model = NewModel(s.refreshCommitted, s.refreshCommitOrigin)
	return s
}

// refreshCommitted pushes the committed position into the bound visuals.
// Runs on every stored change, user-driven or programmatic.
func (s *SeekBar) refreshCommitted() {
	v := s.model.Get()
	Bind(s.fill, v)
	Bind(s.handle, v)
}

// refreshCommitOrigin runs only for user-driven commits. It snaps the
// preview marker onto the committed value so a drag commit overrides any
// stale preview within the same tick.
func (s *SeekBar) refreshCommitOrigin() {
	v := s.model.Get()
	s.preview.value = v
	Bind(s.previewMark, v)
}

// SetSeekedFunc registers the callback raised exactly once per
// user-driven commit. The ratio passed is the committed value.
func (s *SeekBar) SetSeekedFunc(handler func(ratio float64)) *SeekBar {
	s.seekedFunc = handler
	return s
}

// SetFormatFunc registers the formatter rendering a ratio as the tooltip
// label, typically a time position against the track duration.
func (s *SeekBar) SetFormatFunc(handler func(ratio float64) string) *SeekBar {
	s.formatFunc = handler
	return s
}

// SetNavigationModeFunc registers the host's navigation-mode accessor.
// Without one the widget assumes automatic mode.
func (s *SeekBar) SetNavigationModeFunc(handler func() NavigationMode) *SeekBar {
	s.navModeFunc = handler
	return s
}

// SetMapper replaces the coordinate mapper.
func (s *SeekBar) SetMapper(mapper Mapper) *SeekBar {
	s.mapper = mapper
	return s
}

// SetStep sets the keyboard step size.
func (s *SeekBar) SetStep(step float64) *SeekBar {
	s.step = step
	return s
}

// SetDisabled makes the widget ignore pointer and keyboard input.
func (s *SeekBar) SetDisabled(disabled bool) *SeekBar {
	s.disabled = disabled
	return s
}

// Position returns the committed position.
func (s *SeekBar) Position() float64 {
	return s.model.Get()
}

// SetPosition sets the committed position programmatically, e.g. when
// syncing to playback progress. The value is clamped and the visuals
// refresh, but no seek event is raised: programmatic positioning must
// not be mistaken for user-driven seeking.
func (s *SeekBar) SetPosition(ratio float64) *SeekBar {
	s.model.Set(ratio, false)
	return s
}

// PreviewPosition returns the current hover preview. Only meaningful
// while the pointer hovers the widget.
func (s *SeekBar) PreviewPosition() float64 {
	return s.preview.value
}

// trackRect returns the geometry pointer coordinates are mapped against.
func (s *SeekBar) trackRect() Rect {
	x, y, w, h := s.GetInnerRect()
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// handleRect returns the cell occupied by the drag handle.
func (s *SeekBar) handleRect() Rect {
	track := s.trackRect()
	if track.Width <= 0 {
		return Rect{}
	}
	return Rect{
		X:      track.X + ratioToCell(s.model.Get(), track.Width),
		Y:      track.Y,
		Width:  1,
		Height: track.Height,
	}
}

func ratioToCell(ratio float64, width int) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round(ratio * float64(width-1)))
}

// commit stores a user-driven position and raises the seek event. Every
// accepted pointer or keyboard update lands here; there is no
// debouncing.
func (s *SeekBar) commit(ratio float64) {
	s.model.Set(ratio, true)
	if s.seekedFunc != nil {
		s.seekedFunc(s.model.Get())
	}
}

func (s *SeekBar) pointerEnter() {
	s.state = stateHovering
	ShowVisual(s.handle)
	ShowVisual(s.tooltip)
	ShowVisual(s.previewMark)
}

func (s *SeekBar) pointerExit() {
	s.state = stateIdle
	HideVisual(s.handle)
	HideVisual(s.tooltip)
	HideVisual(s.previewMark)
	s.preview.reset()
	Bind(s.previewMark, 0)
}

// pointerDown starts a drag session when the press lands on the handle,
// otherwise it is a direct seek.
func (s *SeekBar) pointerDown(x, y int) {
	if s.disabled {
		return
	}
	if s.handleRect().Contains(x, y) {
		// capture the press offset along the primary axis once; it stays
		// fixed for the lifetime of the drag
		s.dragging = true
		s.dragOffsetX = x - s.handleRect().X
		return
	}
	ratio, ok := s.mapper.MapToRatio(s.trackRect(), x, y)
	if !ok {
		return
	}
	s.commit(ratio)
}

// pointerMove handles both hover tracking and active drag moves.
func (s *SeekBar) pointerMove(x, y int) {
	s.mouseX, s.mouseY = x, y
	if !s.dragging {
		return
	}
	if s.disabled {
		return
	}
	s.state = stateDragging
	ratio, ok := s.mapper.MapToRatio(s.trackRect(), x-s.dragOffsetX, y)
	if !ok {
		// mapping failure aborts this update only
		return
	}
	s.commit(ratio)
}

func (s *SeekBar) pointerUp(inside bool) {
	s.dragging = false
	if inside {
		s.state = stateHovering
		return
	}
	s.pointerExit()
}

// MouseHandler implements tview.Primitive. It deliberately does not use
// WrapMouseHandler: an active drag session must keep receiving move
// events after the pointer leaves the widget's rectangle, which the
// default in-rect gating would drop. Returning the widget as the capture
// primitive keeps tview routing events here for the whole session.
func (s *SeekBar) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		inside := s.InRect(x, y)

		switch action {
		case tview.MouseMove:
			if s.dragging {
				s.pointerMove(x, y)
				return true, s
			}
			if !inside {
				if s.state != stateIdle {
					s.pointerExit()
				}
				return false, nil
			}
			if s.state == stateIdle {
				s.pointerEnter()
			}
			s.pointerMove(x, y)
			return false, nil

		case tview.MouseLeftDown:
			if !inside {
				return false, nil
			}
			if s.disabled {
				return true, nil
			}
			setFocus(s)
			if s.state == stateIdle {
				s.pointerEnter()
			}
			s.pointerDown(x, y)
			if s.dragging {
				return true, s
			}
			return true, nil

		case tview.MouseLeftUp:
			if !s.dragging && !inside {
				return false, nil
			}
			s.pointerUp(inside)
			return true, nil
		}

		return false, nil
	}
}

// InputHandler implements the keyboard stepper. Left/right adjust the
// committed position by the step size when the surrounding navigation
// system is in automatic mode; everything else is left unconsumed so the
// host's focus navigation keeps working.
func (s *SeekBar) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if s.disabled {
			return
		}
		if s.navigationMode() != NavigationAutomatic {
			return
		}
		switch event.Key() {
		case tcell.KeyLeft:
			s.stepBy(-s.step)
		case tcell.KeyRight:
			s.stepBy(s.step)
		}
	})
}

func (s *SeekBar) navigationMode() NavigationMode {
	if s.navModeFunc == nil {
		return NavigationAutomatic
	}
	return s.navModeFunc()
}

func (s *SeekBar) stepBy(delta float64) {
	if s.trackRect().Width <= 0 {
		// degenerate geometry, same rule as pointer updates
		return
	}
	s.commit(s.model.Get() + delta)
}

// Draw implements tview.Primitive.
func (s *SeekBar) Draw(screen tcell.Screen) {
	s.Box.DrawForSubclass(screen, s)
	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	fillCells := 0
	if s.fill.visible {
		fillCells = ratioToCell(s.fill.amount, width) + 1
	}
	for col := 0; col < width; col++ {
		ch, style := tview.BoxDrawingsLightHorizontal, s.trackStyle
		if col < fillCells {
			ch, style = tview.BoxDrawingsHeavyHorizontal, s.fillStyle
		}
		screen.SetContent(x+col, y, ch, nil, style)
	}

	if s.previewMark.visible && s.state == stateHovering {
		col := ratioToCell(s.previewMark.ratio, width)
		screen.SetContent(x+col, y, '•', nil, s.previewStyle)
	}

	if s.handle.visible {
		col := ratioToCell(s.handle.ratio, width)
		screen.SetContent(x+col, y, '◆', nil, s.handleStyle)
	}

	if s.tooltip.active && s.tooltip.text != "" {
		label := " " + s.tooltip.text + " "
		col := x + width - len(label)
		if col < x {
			col = x
		}
		for i, r := range label {
			if col+i >= x+width {
				break
			}
			screen.SetContent(col+i, y, r, nil, s.tooltipStyle)
		}
	}
}
