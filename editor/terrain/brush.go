// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

// BrushMode selects the brush effect.
type BrushMode uint8

const (
	// SculptMode raises (or lowers, for negative strength) terrain.
	SculptMode BrushMode = iota
	// LevelMode blends terrain toward a target height.
	LevelMode
	// PaintMode blends cell color toward the brush color, leaving height.
	PaintMode
)

// Brush configures a radial edit.
type Brush struct {
	Radius   float32   `json:"radius"`   // world units
	Strength float32   `json:"strength"` // signed
	Color    ColorVec  `json:"color"`    // paint mode only
	Mode     BrushMode `json:"mode"`
	Target   float32   `json:"target"` // level mode only
}

// ApplyBrush applies a radial brush centered at a world position.
// Cells outside the true circle are untouched; the effect fades smoothly to
// zero at the radius. A circle that misses the grid yields an empty set.
func (f *Field) ApplyBrush(center world.Vec2f, brush Brush) ChunkSet {
	dirty := make(ChunkSet)

	gc := f.grid(center)
	radius := brush.Radius * f.scale()
	if radius <= 0 {
		return dirty
	}
	radiusSq := radius * radius

	r := int(math32.Ceil(radius))
	minCol := maxInt(0, int(gc.X)-r)
	maxCol := minInt(f.resolution-1, int(gc.X)+r)
	minRow := maxInt(0, int(gc.Y)-r)
	maxRow := minInt(f.resolution-1, int(gc.Y)+r)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			distSq := world.Vec2f{X: float32(col), Y: float32(row)}.DistanceSquared(gc)
			if distSq >= radiusSq {
				continue
			}

			// 1 at the center, 0 at the radius.
			falloff := 1 - distSq/radiusSq
			falloff *= falloff

			switch brush.Mode {
			case SculptMode:
				f.setHeight(col, row, f.Height(col, row)+brush.Strength*falloff)
				f.recolor(col, row)
			case LevelMode:
				blend := clamp(brush.Strength*0.1*falloff, 0, 1)
				f.setHeight(col, row, world.Lerp(f.Height(col, row), brush.Target, blend))
				f.recolor(col, row)
			case PaintMode:
				mix := clamp(brush.Strength*falloff*5, 0, 1)
				f.setColor(col, row, f.Color(col, row).Lerp(brush.Color, mix))
			}

			f.markCell(dirty, col, row)
		}
	}

	return dirty
}
