// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

// The widget renders its committed fill, preview marker and handle
// through bound visuals it never inspects beyond these capabilities.
// Bind decides how to represent a ratio by what the target supports,
// not by configuration: elements that can partially fill get a fill
// amount, everything else gets its boundary anchored at the ratio.

// Fillable is a visual that can render a partial fill, e.g. a gauge.
type Fillable interface {
	SetFillAmount(amount float64)
}

// Anchorable is a visual whose boundary can be placed at a ratio along
// the track's horizontal axis, e.g. a marker.
type Anchorable interface {
	SetAnchorRatio(ratio float64)
}

// Activatable and Deactivatable are optional show/hide capabilities.
// Targets without them fall back to Visible.
type Activatable interface {
	Activate()
}

type Deactivatable interface {
	Deactivate()
}

// Visible is the plain visibility toggle used when no activation
// capability is present.
type Visible interface {
	SetVisible(visible bool)
}

// Bind pushes ratio into target, preferring partial fill over anchoring.
// A nil or incapable target is skipped; a missing visual is never fatal.
func Bind(target interface{}, ratio float64) {
	switch v := target.(type) {
	case Fillable:
		v.SetFillAmount(ratio)
	case Anchorable:
		v.SetAnchorRatio(ratio)
	}
}

// ShowVisual makes target visible through its Activatable capability if
// present, else through plain visibility.
func ShowVisual(target interface{}) {
	if a, ok := target.(Activatable); ok {
		a.Activate()
		return
	}
	if v, ok := target.(Visible); ok {
		v.SetVisible(true)
	}
}

// HideVisual is the inverse of ShowVisual.
func HideVisual(target interface{}) {
	if d, ok := target.(Deactivatable); ok {
		d.Deactivate()
		return
	}
	if v, ok := target.(Visible); ok {
		v.SetVisible(false)
	}
}
