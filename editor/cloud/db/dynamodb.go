// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
	"github.com/pkg/errors"
)

type DynamoDBDatabase struct {
	svc            *dynamodb.DynamoDB
	db             *dynamo.DB
	snapshotsTable dynamo.Table
}

func NewDynamoDBDatabase(session *session.Session, table string) (*DynamoDBDatabase, error) {
	if table == "" {
		return nil, errors.New("empty snapshots table")
	}
	ddb := &DynamoDBDatabase{svc: dynamodb.New(session)}
	ddb.db = dynamo.NewFromIface(ddb.svc)
	ddb.snapshotsTable = ddb.db.Table(table)
	return ddb, nil
}

func (ddb *DynamoDBDatabase) UpdateSnapshot(snapshot Snapshot) error {
	return errors.Wrap(ddb.snapshotsTable.Put(snapshot).Run(), "recording snapshot")
}

func (ddb *DynamoDBDatabase) ReadSnapshots() (snapshots []Snapshot, err error) {
	query := ddb.snapshotsTable.Scan().Iter()

	for {
		var snapshot Snapshot
		ok := query.Next(&snapshot)
		if !ok {
			err = query.Err()
			return
		}
		snapshots = append(snapshots, snapshot)
	}
}
