// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

func TestHeightAt_Bilinear(t *testing.T) {
	f := newTestField(t)
	f.setHeight(100, 100, 10)
	f.setHeight(101, 100, 20)

	// Grid cell 100 sits at world coordinate 100 - 128 = -28.
	corner := world.Vec2f{X: -28, Y: -28}
	if h := f.HeightAt(corner); h != 10 {
		t.Error("exact corner expected 10 got", h)
	}
	if h := f.HeightAt(world.Vec2f{X: -27, Y: -28}); h != 20 {
		t.Error("next corner expected 20 got", h)
	}

	// Midpoint along x interpolates the two corners.
	if h := f.HeightAt(world.Vec2f{X: -27.5, Y: -28}); h != 15 {
		t.Error("midpoint expected 15 got", h)
	}

	// Midpoint of the cell interpolates all four corners (two are zero).
	if h := f.HeightAt(world.Vec2f{X: -27.5, Y: -27.5}); h != 7.5 {
		t.Error("cell center expected 7.5 got", h)
	}
}

func TestHeightAt_Void(t *testing.T) {
	f := newTestField(t)

	voids := []world.Vec2f{
		{X: -129, Y: 0},   // off the grid
		{X: 0, Y: 500},    // far off the grid
		{X: 127.5, Y: 0},  // inside the last cell, outside [0, N-1)
		{X: -128, Y: 128}, // edge corner
	}
	for _, pos := range voids {
		if h := f.HeightAt(pos); h != VoidHeight {
			t.Error("HeightAt", pos, "expected void sentinel got", h)
		}
	}

	// The boundary of the interpolatable interior is still valid.
	if h := f.HeightAt(world.Vec2f{X: -128, Y: -128}); h != 0 {
		t.Error("origin corner expected 0 got", h)
	}
}

func TestHeightAt_PureRead(t *testing.T) {
	f := newTestField(t)
	f.setHeight(100, 100, 10)

	_ = f.HeightAt(world.Vec2f{X: -28, Y: -28})
	if h := f.Height(100, 100); h != 10 {
		t.Error("query mutated the field:", h)
	}
}
