// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"math"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

// scatterAttemptsPerPoint bounds rejection sampling. Thin polygons can
// legitimately yield fewer placements than requested.
const scatterAttemptsPerPoint = 5

// Placement positions one scattered instance. The final per-instance scale
// and offset is the placing collaborator's concern; Scale is a unit
// placeholder.
type Placement struct {
	Position world.Vec3f `json:"position"`
	Yaw      float32     `json:"yaw"` // radians in [0, 2π)
	Scale    float32     `json:"scale"`
}

// Scatter rejection-samples up to count points uniformly inside a world-space
// polygon and places each at the field height of its nearest cell. The same
// seed, polygon, and count always produce identical output. The field is not
// mutated.
func (f *Field) Scatter(poly world.Polygon, count int, seed int64) []Placement {
	if len(poly) < 3 || count <= 0 {
		return nil
	}

	random := world.NewRandom(seed)
	bounds := poly.Bounds()

	placements := make([]Placement, 0, count)
	for attempt := 0; attempt < count*scatterAttemptsPerPoint && len(placements) < count; attempt++ {
		sample := world.Vec2f{
			X: random.Range(bounds.X, bounds.X+bounds.Width),
			Y: random.Range(bounds.Y, bounds.Y+bounds.Height),
		}
		if !poly.Contains(sample) {
			continue
		}

		// Nearest cell, no interpolation.
		gc := f.grid(sample)
		col := clampInt(int(gc.X), 0, f.resolution-1)
		row := clampInt(int(gc.Y), 0, f.resolution-1)

		placements = append(placements, Placement{
			Position: world.Vec3f{X: sample.X, Y: f.Height(col, row), Z: sample.Y},
			Yaw:      random.Range(0, 2*math.Pi),
			Scale:    1,
		})
	}

	return placements
}
