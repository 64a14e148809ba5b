// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

func raisedField(t *testing.T, height float32) *Field {
	t.Helper()
	f := newTestField(t)
	samples := make([]float32, 256*256)
	for i := range samples {
		samples[i] = 1
	}
	if err := f.LoadSamples(samples, height); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestCarve_Cube(t *testing.T) {
	f := raisedField(t, 30)

	dirty := f.Carve(world.Vec3f{X: 0, Y: 10, Z: 0}, world.Vec3f{X: 20, Y: 20, Z: 20}, CubeShape)
	if len(dirty) == 0 {
		t.Fatal("carve produced no dirty chunks")
	}

	// Every in-footprint cell is clamped to the floor: 10 - 20/2 = 0.
	for row := 0; row < 256; row++ {
		for col := 0; col < 256; col++ {
			pos := f.worldAt(col, row)
			inside := math32.Abs(pos.X) <= 10 && math32.Abs(pos.Y) <= 10

			h := f.Height(col, row)
			if inside && h != 0 {
				t.Fatal("in-footprint cell at", col, row, "expected 0 got", h)
			}
			if !inside && h != 30 {
				t.Fatal("out-of-footprint cell at", col, row, "changed:", h)
			}
		}
	}
}

func TestCarve_Sphere(t *testing.T) {
	f := raisedField(t, 30)

	f.Carve(world.Vec3f{X: 0, Y: 10, Z: 0}, world.Vec3f{X: 20, Y: 20, Z: 20}, SphereShape)

	// The footprint test is 2D: corners of the bounding square stay put.
	if h := f.Height(128, 128); h != 0 {
		t.Error("sphere center expected carved to 0 got", h)
	}
	corner := f.grid(world.Vec2f{X: 9, Y: 9})
	if h := f.Height(int(corner.X), int(corner.Y)); h != 30 {
		t.Error("bounding-square corner expected untouched got", h)
	}
}

func TestCarve_NeverRaises(t *testing.T) {
	f := newTestField(t) // all zero heights

	// Floor is above the terrain, so nothing happens.
	dirty := f.Carve(world.Vec3f{X: 0, Y: 50, Z: 0}, world.Vec3f{X: 20, Y: 20, Z: 20}, CubeShape)
	if len(dirty) != 0 {
		t.Error("carve above terrain expected empty dirty set")
	}
	for i, h := range f.height {
		if h != 0 {
			t.Fatal("carve above terrain mutated cell", i, ":", h)
		}
	}
}

func TestCarve_FloorClamp(t *testing.T) {
	f := raisedField(t, 30)

	// A very deep primitive clamps to the carve floor, not below.
	f.Carve(world.Vec3f{X: 0, Y: -100, Z: 0}, world.Vec3f{X: 20, Y: 40, Z: 20}, CubeShape)
	if h := f.Height(128, 128); h != CarveFloor {
		t.Error("deep carve expected", CarveFloor, "got", h)
	}
}

func TestCarve_ZeroScale(t *testing.T) {
	f := raisedField(t, 30)

	if dirty := f.Carve(world.Vec3f{}, world.Vec3f{}, CubeShape); len(dirty) != 0 {
		t.Error("zero-scale carve expected no-op")
	}
}
