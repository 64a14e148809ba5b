// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

// Region configures a polygon fill.
type Region struct {
	Height   float32 `json:"height"`   // target height at the polygon interior
	Falloff  float32 `json:"falloff"`  // world units of edge fade
	NoiseAmp float32 `json:"noiseAmp"` // boundary jitter amplitude
}

// FillRegion raises terrain inside a world-space polygon toward a target
// height, fading over the falloff distance from the polygon edge. The edge
// distance is jittered by coherent noise so the boundary looks organic, but
// membership is tested on unperturbed coordinates. Fill never lowers terrain.
// Fewer than 3 vertices is a no-op.
func (f *Field) FillRegion(poly world.Polygon, region Region) ChunkSet {
	dirty := make(ChunkSet)
	if len(poly) < 3 {
		return dirty
	}

	gpoly := make(world.Polygon, len(poly))
	for i, v := range poly {
		gpoly[i] = f.grid(v)
	}
	falloff := region.Falloff * f.scale()

	bounds := gpoly.Bounds().Expand(falloff)
	minCol := maxInt(0, int(bounds.X))
	maxCol := minInt(f.resolution-1, int(math32.Ceil(bounds.X+bounds.Width)))
	minRow := maxInt(0, int(bounds.Y))
	maxRow := minInt(f.resolution-1, int(math32.Ceil(bounds.Y+bounds.Height)))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cell := world.Vec2f{X: float32(col), Y: float32(row)}
			if !gpoly.Contains(cell) {
				continue
			}

			dist := math32.Sqrt(gpoly.DistanceSquared(cell))
			dist += f.noise.Jitter(cell.X, cell.Y) * region.NoiseAmp * falloff * 0.25

			factor := float32(1)
			if falloff > 0 {
				factor = world.Smoothstep(clamp(dist/falloff, 0, 1))
			}

			candidate := region.Height * factor
			if candidate <= f.Height(col, row) {
				continue
			}

			f.setHeight(col, row, candidate)
			f.recolor(col, row)
			f.markCell(dirty, col, row)
		}
	}

	return dirty
}
