// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "sort"

// ChunkID identifies a chunk by column and row, each in [0, chunksPerSide).
type ChunkID struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ChunkSet collects the chunks whose mesh became stale during one edit call.
// Every edit operation produces a fresh set; the caller consumes it
// immediately.
type ChunkSet map[ChunkID]struct{}

// Contains reports whether id is in the set.
func (set ChunkSet) Contains(id ChunkID) bool {
	_, ok := set[id]
	return ok
}

// IDs returns the set's members sorted row-major, for stable marshaling.
func (set ChunkSet) IDs() []ChunkID {
	ids := make([]ChunkID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Y != ids[j].Y {
			return ids[i].Y < ids[j].Y
		}
		return ids[i].X < ids[j].X
	})
	return ids
}

// AllChunks returns every chunk, for whole-field invalidation after a load.
func (f *Field) AllChunks() ChunkSet {
	set := make(ChunkSet, f.chunksPerSide*f.chunksPerSide)
	for cy := 0; cy < f.chunksPerSide; cy++ {
		for cx := 0; cx < f.chunksPerSide; cx++ {
			set[ChunkID{X: cx, Y: cy}] = struct{}{}
		}
	}
	return set
}

// markCell records the chunk containing a modified cell. Adjacent chunk
// meshes share a boundary row/column of vertices, so a cell on a chunk's
// first row/column also invalidates the neighbor before it. The modulus test
// runs per modified cell because an edit window can touch interior cells
// whose modulus still lands on zero.
func (f *Field) markCell(set ChunkSet, col, row int) {
	cx := col / f.cellsPerChunk
	cy := row / f.cellsPerChunk

	set[ChunkID{X: cx, Y: cy}] = struct{}{}

	if col%f.cellsPerChunk == 0 && cx > 0 {
		set[ChunkID{X: cx - 1, Y: cy}] = struct{}{}
	}
	if row%f.cellsPerChunk == 0 && cy > 0 {
		set[ChunkID{X: cx, Y: cy - 1}] = struct{}{}
	}
}
