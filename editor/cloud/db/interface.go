// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Database records terrain snapshot metadata.
type Database interface {
	UpdateSnapshot(snapshot Snapshot) error
	ReadSnapshots() (snapshots []Snapshot, err error)
}
