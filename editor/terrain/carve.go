// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

// Shape selects a carve primitive's footprint.
type Shape uint8

const (
	// CubeShape carves a rectangular footprint.
	CubeShape Shape = iota
	// SphereShape carves an elliptical footprint. Spheres and cylinders share
	// the same 2D test: the height axis is intentionally not rasterized, so a
	// carve is a flat-bottomed stamp rather than a true CSG subtraction.
	SphereShape
)

// Carve clamps terrain down to the primitive's floor (position.Y minus half
// its height extent) inside the primitive's footprint. Cells already below
// the floor are untouched; carve never raises terrain. The result is clamped
// to CarveFloor.
func (f *Field) Carve(position, scale world.Vec3f, shape Shape) ChunkSet {
	dirty := make(ChunkSet)

	halfX := scale.X * 0.5
	halfZ := scale.Z * 0.5
	if halfX <= 0 || halfZ <= 0 {
		return dirty
	}

	floor := position.Y - scale.Y*0.5
	if floor < CarveFloor {
		floor = CarveFloor
	}

	lo := f.grid(world.Vec2f{X: position.X - halfX, Y: position.Z - halfZ})
	hi := f.grid(world.Vec2f{X: position.X + halfX, Y: position.Z + halfZ})

	minCol := maxInt(0, int(lo.X))
	maxCol := minInt(f.resolution-1, int(math32.Ceil(hi.X)))
	minRow := maxInt(0, int(lo.Y))
	maxRow := minInt(f.resolution-1, int(math32.Ceil(hi.Y)))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			pos := f.worldAt(col, row)
			dx := (pos.X - position.X) / halfX
			dz := (pos.Y - position.Z) / halfZ

			var inside bool
			switch shape {
			case CubeShape:
				inside = math32.Abs(dx) <= 1 && math32.Abs(dz) <= 1
			default:
				inside = dx*dx+dz*dz <= 1
			}
			if !inside || f.Height(col, row) <= floor {
				continue
			}

			f.setHeight(col, row, floor)
			f.recolor(col, row)
			f.markCell(dirty, col, row)
		}
	}

	return dirty
}
