// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

var fillSquare = world.Polygon{
	{X: -50, Y: -50},
	{X: 50, Y: -50},
	{X: 50, Y: 50},
	{X: -50, Y: 50},
}

func TestFillRegion(t *testing.T) {
	f := newTestField(t)

	dirty := f.FillRegion(fillSquare, Region{Height: 20, Falloff: 5})
	if len(dirty) == 0 {
		t.Fatal("fill produced no dirty chunks")
	}

	// The centroid is far beyond the falloff distance from any edge.
	if h := f.Height(128, 128); math32.Abs(h-20) > 1e-3 {
		t.Error("centroid height expected 20 got", h)
	}

	// Cells outside the polygon are unchanged.
	if h := f.Height(200, 200); h != 0 {
		t.Error("cell outside polygon changed:", h)
	}
	if h := f.Height(128, 60); h != 0 {
		t.Error("cell outside polygon changed:", h)
	}
}

func TestFillRegion_Monotonic(t *testing.T) {
	f := newTestField(t)

	f.FillRegion(fillSquare, Region{Height: 20, Falloff: 5})
	heights := make([]float32, len(f.height))
	copy(heights, f.height)

	// A second fill with a lower target never lowers terrain.
	dirty := f.FillRegion(fillSquare, Region{Height: 10, Falloff: 5})
	if len(dirty) != 0 {
		t.Error("lower fill expected no dirty chunks, got", len(dirty))
	}
	for i, h := range f.height {
		if h != heights[i] {
			t.Fatal("lower fill changed height at", i, ":", heights[i], "->", h)
		}
	}
}

func TestFillRegion_NoiseMonotonic(t *testing.T) {
	f := newTestField(t)

	f.FillRegion(fillSquare, Region{Height: 15, Falloff: 10, NoiseAmp: 2})
	for i, h := range f.height {
		if h < 0 {
			t.Fatal("fill lowered cell", i, "to", h)
		}
	}
}

func TestFillRegion_DegeneratePolygon(t *testing.T) {
	f := newTestField(t)

	dirty := f.FillRegion(fillSquare[:2], Region{Height: 20, Falloff: 5})
	if len(dirty) != 0 {
		t.Error("2-vertex polygon expected no-op, got", len(dirty), "dirty chunks")
	}
	for i, h := range f.height {
		if h != 0 {
			t.Fatal("2-vertex polygon mutated cell", i, ":", h)
		}
	}
}

func TestFillRegion_OffGrid(t *testing.T) {
	f := newTestField(t)

	far := world.Polygon{
		{X: 1000, Y: 1000},
		{X: 1100, Y: 1000},
		{X: 1100, Y: 1100},
	}
	if dirty := f.FillRegion(far, Region{Height: 20, Falloff: 5}); len(dirty) != 0 {
		t.Error("off-grid polygon expected empty dirty set")
	}
}
