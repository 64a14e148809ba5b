// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud persists terrain snapshots: the rendered PNG goes to object
// storage and its metadata to a table, so an external viewer can list and
// fetch past states of the field.
package cloud

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"

	"github.com/gubacajifad-ctrl/terraforge/editor/cloud/db"
	"github.com/gubacajifad-ctrl/terraforge/editor/cloud/fs"
)

// Config selects the persistence backends.
type Config struct {
	Region string `yaml:"region"`
	Bucket string `yaml:"bucket"` // S3 bucket for snapshot PNGs
	Table  string `yaml:"table"`  // DynamoDB table for snapshot records
}

// A nil Cloud is valid to use with any method (acts as a no-op).
// This just means the editor is in offline mode.
type Cloud struct {
	database db.Database
	fs       fs.Filesystem
}

// New returns a nil Cloud when no region is configured.
func New(config Config) (*Cloud, error) {
	if config.Region == "" {
		return nil, nil
	}

	awsSession, err := session.NewSession(&aws.Config{Region: aws.String(config.Region)})
	if err != nil {
		return nil, errors.Wrap(err, "creating aws session")
	}

	cloud := &Cloud{}
	cloud.database, err = db.NewDynamoDBDatabase(awsSession, config.Table)
	if err != nil {
		return nil, err
	}
	cloud.fs, err = fs.NewS3Filesystem(awsSession, config.Bucket)
	if err != nil {
		return nil, err
	}

	return cloud, nil
}

func (cloud *Cloud) String() string {
	if cloud == nil {
		return "[offline]"
	}
	return "[online]"
}

// UploadTerrainSnapshot stores an encoded PNG and records its metadata.
func (cloud *Cloud) UploadTerrainSnapshot(snapshot db.Snapshot, data []byte) error {
	if cloud == nil {
		return nil
	}

	snapshot.Key = snapshot.Name + ".png"
	if err := cloud.fs.UploadSnapshot(snapshot.Key, data); err != nil {
		return err
	}
	return cloud.database.UpdateSnapshot(snapshot)
}

// ListSnapshots returns the recorded snapshot metadata.
func (cloud *Cloud) ListSnapshots() ([]db.Snapshot, error) {
	if cloud == nil {
		return nil, nil
	}
	return cloud.database.ReadSnapshots()
}
