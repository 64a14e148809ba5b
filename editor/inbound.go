// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"go.uber.org/zap"

	"github.com/gubacajifad-ctrl/terraforge/editor/terrain"
	"github.com/gubacajifad-ctrl/terraforge/editor/world"
)

// Make sure to register in init function
type (
	// Sculpt applies a radial brush at a world position.
	Sculpt struct {
		Position world.Vec2f   `json:"position"`
		Brush    terrain.Brush `json:"brush"`
	}

	// Layout fills a polygon region toward a target height.
	Layout struct {
		Polygon world.Polygon  `json:"polygon"`
		Region  terrain.Region `json:"region"`
	}

	// Mountain raises a ridge along a polyline.
	Mountain struct {
		Line  []world.Vec2f `json:"line"`
		Ridge terrain.Ridge `json:"ridge"`
	}

	// Carve subtracts a primitive volume from the terrain.
	Carve struct {
		Position world.Vec3f   `json:"position"`
		Scale    world.Vec3f   `json:"scale"`
		Shape    terrain.Shape `json:"shape"`
	}

	// Scatter requests deterministic placements inside a polygon.
	// The field is not modified.
	Scatter struct {
		Polygon world.Polygon `json:"polygon"`
		Count   int           `json:"count"`
		Seed    int64         `json:"seed"`
	}

	// QueryHeight requests the interpolated ground height at a position.
	QueryHeight struct {
		Position world.Vec2f `json:"position"`
	}

	// LoadTerrain replaces every cell's height from an encoded grayscale
	// heightmap image, resampled to the field resolution.
	LoadTerrain struct {
		Image       []byte  `json:"image"` // PNG or JPEG bytes
		HeightScale float32 `json:"heightScale"`
	}

	// InvalidInbound means invalid message type from client (possibly out of date).
	// NOTE: Do not register, otherwise client could send type "invalidInbound"
	InvalidInbound struct {
		messageType messageType
	}
)

func init() {
	registerInbound(
		Sculpt{},
		Layout{},
		Mountain{},
		Carve{},
		Scatter{},
		QueryHeight{},
		LoadTerrain{},
	)
}

func (in Sculpt) Inbound(h *Hub, _ Client) {
	dirty := h.field.ApplyBrush(in.Position, in.Brush)
	h.logger.Debug("sculpt", zap.Int("dirty", len(dirty)))
	h.broadcastDirty(dirty)
}

func (in Layout) Inbound(h *Hub, _ Client) {
	dirty := h.field.FillRegion(in.Polygon, in.Region)
	h.logger.Debug("layout", zap.Int("vertices", len(in.Polygon)), zap.Int("dirty", len(dirty)))
	h.broadcastDirty(dirty)
}

func (in Mountain) Inbound(h *Hub, _ Client) {
	dirty := h.field.RaiseRidge(in.Line, in.Ridge)
	h.logger.Debug("mountain", zap.Int("vertices", len(in.Line)), zap.Int("dirty", len(dirty)))
	h.broadcastDirty(dirty)
}

func (in Carve) Inbound(h *Hub, _ Client) {
	dirty := h.field.Carve(in.Position, in.Scale, in.Shape)
	h.logger.Debug("carve", zap.Int("dirty", len(dirty)))
	h.broadcastDirty(dirty)
}

func (in Scatter) Inbound(h *Hub, client Client) {
	placements := h.field.Scatter(in.Polygon, in.Count, in.Seed)
	client.Send(Placements{Seed: in.Seed, Placements: placements})
}

func (in QueryHeight) Inbound(h *Hub, client Client) {
	client.Send(GroundHeight{Position: in.Position, Height: h.field.HeightAt(in.Position)})
}

func (in LoadTerrain) Inbound(h *Hub, _ Client) {
	img, _, err := image.Decode(bytes.NewReader(in.Image))
	if err != nil {
		h.logger.Warn("undecodable heightmap image", zap.Error(err))
		return
	}
	if err := h.field.LoadImage(img, in.HeightScale); err != nil {
		h.logger.Warn("heightmap load rejected", zap.Error(err))
		return
	}
	h.logger.Info("heightmap loaded", zap.Float32("heightScale", in.HeightScale))

	// Every chunk mesh is stale after a whole-field load.
	h.broadcastDirty(h.field.AllChunks())
}
