// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"fmt"
	"io"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/passcheck/fault"
	"github.com/bitmark-inc/passcheck/record"
)

// LevelDB - records stored in a database, read in key order
type LevelDB struct {
	db       *leveldb.DB
	iter     iterator.Iterator
	finished bool
}

// OpenLevelDB - open an existing database read only
func OpenLevelDB(directory string) (*LevelDB, error) {
	options := &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	}
	db, err := leveldb.OpenFile(directory, options)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrSourceUnavailable, err)
	}
	return &LevelDB{
		db:   db,
		iter: db.NewIterator(nil, nil),
	}, nil
}

// Next - decode the next key/value pair
func (l *LevelDB) Next() (record.Record, error) {
	if l.finished {
		return record.Record{}, io.EOF
	}
	if !l.iter.Next() {
		l.finished = true
		err := l.iter.Error()
		l.iter.Release()
		if nil != err {
			return record.Record{}, fmt.Errorf("%w: %s", fault.ErrSourceUnavailable, err)
		}
		return record.Record{}, io.EOF
	}

	// iterator buffers are reused so convert to strings immediately
	key := string(l.iter.Key())
	id, err := record.ParseIdentifier(key)
	if nil != err {
		return record.Record{}, fmt.Errorf("key %q: %w", key, err)
	}
	r, err := record.New(id, string(l.iter.Value()))
	if nil != err {
		return record.Record{}, fmt.Errorf("key %q: %w", key, err)
	}
	return r, nil
}

// Close - release the iterator and the database
func (l *LevelDB) Close() error {
	if !l.finished {
		l.finished = true
		l.iter.Release()
	}
	return l.db.Close()
}
