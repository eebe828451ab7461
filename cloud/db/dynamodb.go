// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
)

type DynamoDBDatabase struct {
	svc          *dynamodb.DynamoDB
	db           *dynamo.DB
	rendersTable dynamo.Table
}

func NewDynamoDBDatabase(session *session.Session, table string) (*DynamoDBDatabase, error) {
	if table == "" {
		return nil, errors.New("missing table")
	}
	ddb := &DynamoDBDatabase{svc: dynamodb.New(session)}
	ddb.db = dynamo.NewFromIface(ddb.svc)
	ddb.rendersTable = ddb.db.Table(table)
	return ddb, nil
}

func (ddb *DynamoDBDatabase) PutRender(render Render) error {
	return ddb.rendersTable.Put(render).Run()
}

func (ddb *DynamoDBDatabase) ReadRenders() (renders []Render, err error) {
	err = ddb.rendersTable.Scan().All(&renders)
	return
}

func (ddb *DynamoDBDatabase) ReadRendersByWave(wave string) (renders []Render, err error) {
	query := ddb.rendersTable.Get("wave", wave).Iter()

	for {
		var render Render
		if !query.Next(&render) {
			err = query.Err()
			return
		}
		renders = append(renders, render)
	}
}
