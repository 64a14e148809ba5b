// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

var ridgeLine = []world.Vec2f{
	{X: -40, Y: 0},
	{X: 0, Y: 10},
	{X: 40, Y: 0},
}

func TestRaiseRidge(t *testing.T) {
	f := newTestField(t)

	dirty := f.RaiseRidge(ridgeLine, Ridge{Height: 25, HalfWidth: 12})
	if len(dirty) == 0 {
		t.Fatal("ridge produced no dirty chunks")
	}

	// A cell on the centerline reaches close to the target height.
	// Grid cell of world (-40, 0) is (88, 128).
	if h := f.Height(88, 128); h < 20 {
		t.Error("centerline height expected near 25 got", h)
	}

	// Nothing was lowered anywhere.
	for i, h := range f.height {
		if h < 0 {
			t.Fatal("ridge lowered cell", i, "to", h)
		}
	}

	// Cells beyond the half-width are unchanged.
	if h := f.Height(128, 200); h != 0 {
		t.Error("cell beyond half-width changed:", h)
	}
}

func TestRaiseRidge_NoiseFactor(t *testing.T) {
	f := newTestField(t)

	f.RaiseRidge(ridgeLine, Ridge{Height: 25, HalfWidth: 12, NoiseAmp: 0.5})

	// The noise factor scales the profile but never below zero.
	for i, h := range f.height {
		if h < 0 {
			t.Fatal("noisy ridge lowered cell", i, "to", h)
		}
	}
}

func TestRaiseRidge_Monotonic(t *testing.T) {
	f := newTestField(t)

	f.RaiseRidge(ridgeLine, Ridge{Height: 25, HalfWidth: 12})
	heights := make([]float32, len(f.height))
	copy(heights, f.height)

	// A lower ridge over the same line changes nothing.
	f.RaiseRidge(ridgeLine, Ridge{Height: 10, HalfWidth: 12})
	for i, h := range f.height {
		if h < heights[i] {
			t.Fatal("second ridge lowered cell", i, ":", heights[i], "->", h)
		}
	}
}

func TestRaiseRidge_Degenerate(t *testing.T) {
	f := newTestField(t)

	if dirty := f.RaiseRidge(ridgeLine[:1], Ridge{Height: 25, HalfWidth: 12}); len(dirty) != 0 {
		t.Error("1-vertex polyline expected no-op")
	}
	if dirty := f.RaiseRidge(ridgeLine, Ridge{Height: 25, HalfWidth: 0}); len(dirty) != 0 {
		t.Error("zero half-width expected no-op")
	}
}
