// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Snapshot describes one persisted terrain render.
type Snapshot struct {
	Name       string  `dynamo:"name,hash" json:"name"`
	Timestamp  int64   `dynamo:"timestamp" json:"timestamp"`
	Resolution int     `dynamo:"resolution" json:"resolution"`
	WorldSize  float32 `dynamo:"worldSize" json:"worldSize"`
	Key        string  `dynamo:"key" json:"key"` // object key in the snapshot bucket
}
