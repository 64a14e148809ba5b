// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain implements the editable height/color field. All edit
// operations mutate the field in place and return the set of chunks whose
// mesh must be rebuilt. Callers must serialize edit calls; HeightAt is a
// pure read.
package terrain

import (
	"fmt"

	"github.com/gubacajifad-ctrl/terraforge/editor/terrain/noise"
	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

// ChunkEdge is the world-space side length of a chunk, independent of the
// field resolution.
const ChunkEdge = 16

// VoidHeight is returned by HeightAt outside the interpolatable interior.
const VoidHeight = -100

// CarveFloor is the lowest height a carve can clamp a cell to.
const CarveFloor = -50

// Resolutions are the supported grid resolutions.
var Resolutions = [...]int{128, 256, 512, 1024}

// Field is the paired height/color buffers over an N×N grid plus the
// world-to-grid mapping. Heights are unbounded; color channels stay in [0, 1].
type Field struct {
	resolution    int
	worldSize     float32
	chunksPerSide int
	cellsPerChunk int

	// Row-major, index = row*resolution + col.
	height []float32
	// RGB triples, index = (row*resolution + col) * 3.
	color []float32

	noise   *noise.Generator
	palette []paletteRule
}

// New creates a zero-height field and colorizes every cell.
func New(resolution int, worldSize float32) (*Field, error) {
	return NewWithSeed(resolution, worldSize, noise.Seed)
}

// NewWithSeed creates a field whose noise permutation tables derive from seed.
func NewWithSeed(resolution int, worldSize float32, seed int64) (*Field, error) {
	supported := false
	for _, r := range Resolutions {
		if r == resolution {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("terrain: unsupported resolution %d", resolution)
	}
	if worldSize <= 0 {
		return nil, fmt.Errorf("terrain: non-positive world size %g", worldSize)
	}

	chunksPerSide := int(worldSize / ChunkEdge)
	if float32(chunksPerSide)*ChunkEdge != worldSize || chunksPerSide <= 0 {
		return nil, fmt.Errorf("terrain: world size %g is not a multiple of the chunk edge %d", worldSize, ChunkEdge)
	}
	if resolution%chunksPerSide != 0 {
		return nil, fmt.Errorf("terrain: resolution %d is not divisible by %d chunks per side", resolution, chunksPerSide)
	}

	f := &Field{
		resolution:    resolution,
		worldSize:     worldSize,
		chunksPerSide: chunksPerSide,
		cellsPerChunk: resolution / chunksPerSide,
		height:        make([]float32, resolution*resolution),
		color:         make([]float32, resolution*resolution*3),
		noise:         noise.New(seed),
		palette:       defaultPalette,
	}

	f.recolorAll()
	return f, nil
}

// Resolution returns the grid side length in cells.
func (f *Field) Resolution() int {
	return f.resolution
}

// WorldSize returns the world-space side length.
func (f *Field) WorldSize() float32 {
	return f.worldSize
}

// ChunksPerSide returns the number of chunks along one side.
func (f *Field) ChunksPerSide() int {
	return f.chunksPerSide
}

// CellsPerChunk returns the number of cells along one chunk side.
func (f *Field) CellsPerChunk() int {
	return f.cellsPerChunk
}

// scale converts world units to grid units.
func (f *Field) scale() float32 {
	return float32(f.resolution) / f.worldSize
}

// grid maps a world position to a continuous grid coordinate.
// Grid coordinate 0 corresponds to world coordinate -worldSize/2.
func (f *Field) grid(pos world.Vec2f) world.Vec2f {
	half := f.worldSize * 0.5
	return world.Vec2f{
		X: (pos.X + half) / f.worldSize * float32(f.resolution),
		Y: (pos.Y + half) / f.worldSize * float32(f.resolution),
	}
}

// worldAt maps a cell to its world position.
func (f *Field) worldAt(col, row int) world.Vec2f {
	half := f.worldSize * 0.5
	return world.Vec2f{
		X: float32(col)/float32(f.resolution)*f.worldSize - half,
		Y: float32(row)/float32(f.resolution)*f.worldSize - half,
	}
}

func (f *Field) index(col, row int) int {
	return row*f.resolution + col
}

func (f *Field) inBounds(col, row int) bool {
	return col >= 0 && col < f.resolution && row >= 0 && row < f.resolution
}

// Height returns the height of a cell.
func (f *Field) Height(col, row int) float32 {
	return f.height[f.index(col, row)]
}

// Color returns the color of a cell.
func (f *Field) Color(col, row int) ColorVec {
	i := f.index(col, row) * 3
	return ColorVec{f.color[i], f.color[i+1], f.color[i+2]}
}

func (f *Field) setHeight(col, row int, h float32) {
	f.height[f.index(col, row)] = h
}

func (f *Field) setColor(col, row int, c ColorVec) {
	i := f.index(col, row) * 3
	f.color[i] = clamp(c[0], 0, 1)
	f.color[i+1] = clamp(c[1], 0, 1)
	f.color[i+2] = clamp(c[2], 0, 1)
}

// heightClamped reads a neighbor height, clamping out-of-range coordinates to
// the nearest in-bounds cell.
func (f *Field) heightClamped(col, row int) float32 {
	col = clampInt(col, 0, f.resolution-1)
	row = clampInt(row, 0, f.resolution-1)
	return f.height[f.index(col, row)]
}

// LoadSamples replaces every cell's height with sample*heightScale and
// recolors the whole field. The sample buffer must be resolution² grayscale
// values.
func (f *Field) LoadSamples(samples []float32, heightScale float32) error {
	if len(samples) != f.resolution*f.resolution {
		return fmt.Errorf("terrain: sample buffer length %d, want %d", len(samples), f.resolution*f.resolution)
	}

	for i, s := range samples {
		f.height[i] = s * heightScale
	}
	f.recolorAll()
	return nil
}

// recolorAll refreshes every cell's color. O(N²), run once per load/init.
func (f *Field) recolorAll() {
	for row := 0; row < f.resolution; row++ {
		for col := 0; col < f.resolution; col++ {
			f.recolor(col, row)
		}
	}
}
