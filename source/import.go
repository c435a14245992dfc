// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"io"

	"github.com/syndtr/goleveldb/leveldb"
)

// Import - copy all records from a reader into a database
//
// an identifier already in the database, or seen earlier in the
// reader, is not overwritten; returns the number of records stored
func Import(db *leveldb.DB, reader Reader) (int, error) {
	batch := new(leveldb.Batch)
	seen := make(map[string]struct{})

	for {
		r, err := reader.Next()
		if io.EOF == err {
			break
		}
		if nil != err {
			return 0, err
		}

		key := r.ID().String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		exists, err := db.Has([]byte(key), nil)
		if nil != err {
			return 0, err
		}
		if exists {
			continue
		}
		batch.Put([]byte(key), []byte(r.Secret()))
	}

	if err := db.Write(batch, nil); nil != err {
		return 0, err
	}
	return batch.Len(), nil
}
