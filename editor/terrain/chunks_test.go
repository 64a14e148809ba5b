// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"testing"

	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

func TestMarkCell(t *testing.T) {
	f := newTestField(t) // 16 cells per chunk

	tests := []struct {
		col, row int
		expected []ChunkID
	}{
		// Interior cell marks only its own chunk.
		{5, 5, []ChunkID{{0, 0}}},
		// First column of a chunk also invalidates the left neighbor.
		{16, 5, []ChunkID{{0, 0}, {1, 0}}},
		// First row likewise invalidates the chunk above.
		{5, 32, []ChunkID{{0, 1}, {0, 2}}},
		// Both at once.
		{16, 16, []ChunkID{{0, 1}, {1, 0}, {1, 1}}},
		// Cell (0, 0) has no neighbors before it.
		{0, 0, []ChunkID{{0, 0}}},
		// Chunk-interior cell whose modulus lands on zero mid-grid.
		{128, 70, []ChunkID{{7, 4}, {8, 4}}},
	}

	for _, test := range tests {
		set := make(ChunkSet)
		f.markCell(set, test.col, test.row)

		ids := set.IDs()
		if len(ids) != len(test.expected) {
			t.Error("markCell", test.col, test.row, "expected", test.expected, "got", ids)
			continue
		}
		for i := range ids {
			if ids[i] != test.expected[i] {
				t.Error("markCell", test.col, test.row, "expected", test.expected, "got", ids)
				break
			}
		}
	}
}

// Every chunk containing a changed cell must appear in the dirty set, and
// chunks with no changed cell and no shared boundary must not.
func TestDirtySetSoundness(t *testing.T) {
	f := newTestField(t)
	before := make([]float32, len(f.height))
	copy(before, f.height)

	dirty := f.ApplyBrush(world.Vec2f{X: 20, Y: -35}, Brush{Radius: 17, Strength: 4, Mode: SculptMode})

	changed := make(ChunkSet)
	for row := 0; row < 256; row++ {
		for col := 0; col < 256; col++ {
			if f.Height(col, row) != before[f.index(col, row)] {
				changed[ChunkID{X: col / f.cellsPerChunk, Y: row / f.cellsPerChunk}] = struct{}{}
			}
		}
	}

	if len(changed) == 0 {
		t.Fatal("brush changed nothing")
	}

	for id := range changed {
		if !dirty.Contains(id) {
			t.Error("chunk with changed cell missing from dirty set:", id)
		}
	}

	// Anything extra must be the left/top neighbor of a changed chunk.
	for id := range dirty {
		if changed.Contains(id) {
			continue
		}
		right := ChunkID{X: id.X + 1, Y: id.Y}
		below := ChunkID{X: id.X, Y: id.Y + 1}
		if !changed.Contains(right) && !changed.Contains(below) {
			t.Error("dirty chunk neither changed nor boundary neighbor:", id)
		}
	}
}

func TestAllChunks(t *testing.T) {
	f := newTestField(t)

	all := f.AllChunks()
	if len(all) != f.chunksPerSide*f.chunksPerSide {
		t.Error("expected", f.chunksPerSide*f.chunksPerSide, "chunks got", len(all))
	}
	if !all.Contains(ChunkID{X: 0, Y: 0}) || !all.Contains(ChunkID{X: f.chunksPerSide - 1, Y: f.chunksPerSide - 1}) {
		t.Error("corner chunks missing from AllChunks")
	}
}

func TestChunkSet_IDs(t *testing.T) {
	set := ChunkSet{
		{X: 2, Y: 1}: {},
		{X: 0, Y: 0}: {},
		{X: 1, Y: 1}: {},
	}

	ids := set.IDs()
	expected := []ChunkID{{0, 0}, {1, 1}, {2, 1}}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatal("IDs expected", expected, "got", ids)
		}
	}
}
