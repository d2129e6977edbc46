// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package seekbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fillOnly struct{ amount float64 }

func (f *fillOnly) SetFillAmount(a float64) { f.amount = a }

type anchorOnly struct{ ratio float64 }

func (a *anchorOnly) SetAnchorRatio(r float64) { a.ratio = r }

type fillAndAnchor struct {
	filled, anchored bool
}

func (b *fillAndAnchor) SetFillAmount(float64)  { b.filled = true }
func (b *fillAndAnchor) SetAnchorRatio(float64) { b.anchored = true }

type activatableVisual struct {
	activated, deactivated bool
	visible                bool
}

func (v *activatableVisual) Activate()         { v.activated = true }
func (v *activatableVisual) Deactivate()       { v.deactivated = true }
func (v *activatableVisual) SetVisible(b bool) { v.visible = b }

type plainVisual struct{ visible bool }

func (v *plainVisual) SetVisible(b bool) { v.visible = b }

func TestBind(t *testing.T) {
	t.Run("fillable target gets a fill amount", func(t *testing.T) {
		f := &fillOnly{}
		Bind(f, 0.7)
		assert.Equal(t, 0.7, f.amount)
	})

	t.Run("anchorable target gets an anchor ratio", func(t *testing.T) {
		a := &anchorOnly{}
		Bind(a, 0.25)
		assert.Equal(t, 0.25, a.ratio)
	})

	t.Run("fill is preferred when both are supported", func(t *testing.T) {
		b := &fillAndAnchor{}
		Bind(b, 0.5)
		assert.True(t, b.filled)
		assert.False(t, b.anchored)
	})

	t.Run("missing visual is skipped", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Bind(nil, 0.5)
			Bind(struct{}{}, 0.5)
		})
	})
}

func TestShowHideVisual(t *testing.T) {
	t.Run("activation capability wins over plain visibility", func(t *testing.T) {
		v := &activatableVisual{}
		ShowVisual(v)
		assert.True(t, v.activated)
		assert.False(t, v.visible, "SetVisible must not be used when Activate exists")

		HideVisual(v)
		assert.True(t, v.deactivated)
	})

	t.Run("plain visibility fallback", func(t *testing.T) {
		v := &plainVisual{}
		ShowVisual(v)
		assert.True(t, v.visible)
		HideVisual(v)
		assert.False(t, v.visible)
	})

	t.Run("incapable target is skipped", func(t *testing.T) {
		assert.NotPanics(t, func() {
			ShowVisual(nil)
			HideVisual(struct{}{})
		})
	})
}
