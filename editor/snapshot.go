// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"bytes"
	"image/png"
	"time"

	"go.uber.org/zap"

	"github.com/gubacajifad-ctrl/terraforge/editor/cloud/db"
)

// SnapshotTerrain renders the field to PNG and persists it through the cloud.
// The render happens on the hub goroutine so it sees a consistent field; the
// upload happens off it.
func (h *Hub) SnapshotTerrain() {
	if h.cloud == nil {
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, h.field.ExportColormap()); err != nil {
		h.logger.Error("error encoding terrain snapshot", zap.Error(err))
		return
	}

	snapshot := db.Snapshot{
		Name:       time.Now().UTC().Format("terrain-20060102-150405"),
		Timestamp:  time.Now().Unix(),
		Resolution: h.field.Resolution(),
		WorldSize:  h.field.WorldSize(),
	}

	data := buf.Bytes()
	go func() {
		if err := h.cloud.UploadTerrainSnapshot(snapshot, data); err != nil {
			h.logger.Error("error uploading terrain snapshot", zap.Error(err))
		}
	}()
}
