// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

// Concrete visuals the widget binds by default. They only hold state;
// Draw reads them back when rendering. Each one exposes exactly the
// capabilities Bind/ShowVisual introspect for, so the widget itself
// never special-cases how a ratio is represented.

// fillVisual renders the committed position as a partially filled track.
type fillVisual struct {
	amount  float64
	visible bool
}

func (f *fillVisual) SetFillAmount(amount float64) { f.amount = amount }
func (f *fillVisual) SetVisible(visible bool)      { f.visible = visible }

// markerVisual renders a position as a marker anchored at a ratio along
// the track. Used for both the preview marker and the drag handle.
type markerVisual struct {
	ratio   float64
	visible bool
}

func (m *markerVisual) SetAnchorRatio(ratio float64) { m.ratio = ratio }
func (m *markerVisual) SetVisible(visible bool)      { m.visible = visible }

// tooltipVisual is the text sink for the formatted preview label. It
// carries the activation capability pair, exercising the Activatable
// path of ShowVisual/HideVisual.
type tooltipVisual struct {
	text   string
	active bool
}

func (t *tooltipVisual) SetText(text string) { t.text = text }
func (t *tooltipVisual) Activate()           { t.active = true }

func (t *tooltipVisual) Deactivate() {
	t.active = false
	t.text = ""
}
