// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"github.com/bitmark-inc/passcheck/fault"
	"github.com/bitmark-inc/passcheck/record"
)

// Reader - a stream of records
//
// Next returns io.EOF once all records have been read
type Reader interface {
	Next() (record.Record, error)
}

// Format - kind of storage holding the records
type Format string

// supported formats
const (
	FormatText    Format = "text"
	FormatLevelDB Format = "leveldb"
)

// Valid - true for a supported format
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatLevelDB:
		return true
	default:
		return false
	}
}

// ReadCloser - a reader holding an open resource
type ReadCloser interface {
	Reader
	Close() error
}

// Open - open a named source of the given format
func Open(format Format, name string) (ReadCloser, error) {
	switch format {
	case FormatText:
		f, err := OpenFile(name)
		if nil != err {
			return nil, err
		}
		return f, nil
	case FormatLevelDB:
		l, err := OpenLevelDB(name)
		if nil != err {
			return nil, err
		}
		return l, nil
	default:
		return nil, fault.ErrInvalidFormat
	}
}
