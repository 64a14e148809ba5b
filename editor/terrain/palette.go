// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"
)

// Heights separating the palette bands, in world units.
const (
	deepLevel   = -2
	shoreLevel  = 0.8
	grassLevel  = 8
	forestLevel = 18
	// Slope above which a cell reads as bare rock regardless of height.
	rockSlope = 4
)

var (
	deepColor   = RGB(0, 50, 115)
	waterColor  = RGB(0, 75, 130)
	sandColor   = RGB(194, 178, 128)
	grassColor  = RGB(90, 180, 30)
	forestColor = RGB(40, 110, 35)
	rockColor   = RGB(105, 110, 115)
	snowColor   = Gray(220)
)

// paletteRule classifies a cell by noise-perturbed height and slope.
// Rules are evaluated top to bottom; the first match wins.
type paletteRule struct {
	match func(h, slope float32) bool
	color func(h, slope, shade float32) ColorVec
}

var defaultPalette = []paletteRule{
	{ // deep water
		match: func(h, slope float32) bool { return h < deepLevel },
		color: func(h, slope, shade float32) ColorVec {
			return deepColor.Lerp(waterColor, clamp(1+(h-deepLevel)*0.1, 0, 1))
		},
	},
	{ // shoreline sand
		match: func(h, slope float32) bool { return h < shoreLevel },
		color: func(h, slope, shade float32) ColorVec {
			return waterColor.Lerp(sandColor, clamp((h-deepLevel)*0.5, 0, 1))
		},
	},
	{ // steep rock at any altitude
		match: func(h, slope float32) bool { return slope > rockSlope },
		color: func(h, slope, shade float32) ColorVec {
			return rockColor.Mul(1 - 0.1*shade)
		},
	},
	{ // low vegetation
		match: func(h, slope float32) bool { return h < grassLevel },
		color: func(h, slope, shade float32) ColorVec {
			return sandColor.Lerp(grassColor, clamp((h-shoreLevel)*0.5, 0, 1)).Mul(1 - 0.15*shade)
		},
	},
	{ // mid vegetation
		match: func(h, slope float32) bool { return h < forestLevel },
		color: func(h, slope, shade float32) ColorVec {
			return grassColor.Lerp(forestColor, clamp((h-grassLevel)*0.2, 0, 1)).Mul(1 - 0.2*shade)
		},
	},
	{ // high altitude fade
		match: func(h, slope float32) bool { return true },
		color: func(h, slope, shade float32) ColorVec {
			return rockColor.Lerp(snowColor, clamp((h-forestLevel)*0.07, 0, 1))
		},
	},
}

// recolor derives a cell's color from its height, local slope, and noise.
// Call it whenever the cell's height changes, and only then.
func (f *Field) recolor(col, row int) {
	h := f.Height(col, row)

	// Finite differences against the four axis neighbors; edge neighbors
	// clamp to the cell itself.
	dx := f.heightClamped(col+1, row) - f.heightClamped(col-1, row)
	dy := f.heightClamped(col, row+1) - f.heightClamped(col, row-1)
	slope := math32.Hypot(dx, dy)

	shade := f.noise.Shade(float32(col), float32(row))
	// A gentle perturbation so band boundaries are not straight contour lines.
	perturbed := h + shade*1.5

	for _, rule := range f.palette {
		if rule.match(perturbed, slope) {
			// 0.5*shade+0.5 keeps the darkening factor in [0, 1].
			f.setColor(col, row, rule.color(perturbed, slope, shade*0.5+0.5))
			return
		}
	}
}
