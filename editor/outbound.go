// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"sync"

	"github.com/gubacajifad-ctrl/terraforge/editor/terrain"
	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

type (
	// Welcome tells a new client the field's shape so it can build chunk
	// meshes before the first edit arrives.
	Welcome struct {
		Resolution    int     `json:"resolution"`
		WorldSize     float32 `json:"worldSize"`
		ChunksPerSide int     `json:"chunksPerSide"`
	}

	// Invalidate lists the chunks whose mesh became stale after an edit.
	Invalidate struct {
		Chunks []terrain.ChunkID `json:"chunks"`
	}

	// Placements answers a Scatter request.
	Placements struct {
		Seed       int64               `json:"seed"`
		Placements []terrain.Placement `json:"placements"`
	}

	// GroundHeight answers a QueryHeight request.
	GroundHeight struct {
		Position world.Vec2f `json:"position"`
		Height   float32     `json:"height"`
	}
)

func init() {
	registerOutbound(
		Welcome{},
		Invalidate{},
		Placements{},
		GroundHeight{},
	)
}

// Dirty sets are broadcast to every client, so the chunk slices churn.
var chunksPool = sync.Pool{
	New: func() interface{} {
		slice := make([]terrain.ChunkID, 0, 64)
		return &slice
	},
}

// newInvalidate builds a per-client Invalidate; each recipient pools its own
// chunk slice after marshaling.
func newInvalidate(ids []terrain.ChunkID) Invalidate {
	chunksPtr := chunksPool.Get().(*[]terrain.ChunkID)
	return Invalidate{Chunks: append(*chunksPtr, ids...)}
}

func (out Invalidate) Pool() {
	chunks := out.Chunks[:0]
	chunksPool.Put(&chunks)
}

func (out Welcome) Pool()      {}
func (out Placements) Pool()   {}
func (out GroundHeight) Pool() {}
