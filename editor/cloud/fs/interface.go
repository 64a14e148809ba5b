// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

// Filesystem stores rendered terrain snapshots.
type Filesystem interface {
	UploadSnapshot(key string, data []byte) error
}
