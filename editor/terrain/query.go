// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

// HeightAt returns the bilinearly interpolated field height at a continuous
// world position. Positions within one cell of the grid edge return
// VoidHeight instead of failing. Pure read; safe between edits but not
// concurrently with an in-flight edit on the same field.
func (f *Field) HeightAt(pos world.Vec2f) float32 {
	gc := f.grid(pos)
	if gc.X < 0 || gc.Y < 0 || gc.X >= float32(f.resolution-1) || gc.Y >= float32(f.resolution-1) {
		return VoidHeight
	}

	col := int(math32.Floor(gc.X))
	row := int(math32.Floor(gc.Y))
	tx := gc.X - float32(col)
	ty := gc.Y - float32(row)

	h00 := f.Height(col, row)
	h10 := f.Height(col+1, row)
	h01 := f.Height(col, row+1)
	h11 := f.Height(col+1, row+1)

	return world.Lerp(
		world.Lerp(h00, h10, tx),
		world.Lerp(h01, h11, tx),
		ty,
	)
}
