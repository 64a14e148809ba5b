// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

// Ridge configures a ridge-line edit.
type Ridge struct {
	Height    float32 `json:"height"`    // peak height at the centerline
	HalfWidth float32 `json:"halfWidth"` // world units from centerline to foot
	NoiseAmp  float32 `json:"noiseAmp"`  // profile variation amplitude
}

// RaiseRidge raises terrain along an open world-space polyline with a
// parabolic cross profile, perturbed by low-frequency noise sampled in world
// coordinates. Like FillRegion it only ever raises terrain. Fewer than 2
// vertices is a no-op.
func (f *Field) RaiseRidge(line []world.Vec2f, ridge Ridge) ChunkSet {
	dirty := make(ChunkSet)
	if len(line) < 2 || ridge.HalfWidth <= 0 {
		return dirty
	}

	gline := make([]world.Vec2f, len(line))
	for i, v := range line {
		gline[i] = f.grid(v)
	}
	halfWidth := ridge.HalfWidth * f.scale()

	bounds := world.AABBOf(gline...).Expand(halfWidth)
	minCol := maxInt(0, int(bounds.X))
	maxCol := minInt(f.resolution-1, int(math32.Ceil(bounds.X+bounds.Width)))
	minRow := maxInt(0, int(bounds.Y))
	maxRow := minInt(f.resolution-1, int(math32.Ceil(bounds.Y+bounds.Height)))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cell := world.Vec2f{X: float32(col), Y: float32(row)}
			distSq := world.PolylineDistanceSquared(gline, cell)
			if distSq >= halfWidth*halfWidth {
				continue
			}

			t := math32.Sqrt(distSq) / halfWidth
			profile := (1 - t) * (1 - t)

			pos := f.worldAt(col, row)
			factor := 1 + f.noise.Ridge(pos.X, pos.Y)*ridge.NoiseAmp

			candidate := ridge.Height * profile * factor
			if candidate < 0 {
				candidate = 0
			}
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
