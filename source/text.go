// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/passcheck/fault"
	"github.com/bitmark-inc/passcheck/record"
)

// Text - records from lines of text
type Text struct {
	scanner *bufio.Scanner
	line    int
}

// NewText - read records from any text stream
func NewText(r io.Reader) *Text {
	return &Text{
		scanner: bufio.NewScanner(r),
		line:    0,
	}
}

// Next - the record on the next non-blank line
func (t *Text) Next() (record.Record, error) {
	for t.scanner.Scan() {
		t.line += 1
		fields := strings.Fields(t.scanner.Text())
		switch len(fields) {
		case 0:
			continue
		case 2:
		default:
			return record.Record{}, fmt.Errorf("line %d: %w", t.line, fault.ErrMalformedRecord)
		}
		id, err := record.ParseIdentifier(fields[0])
		if nil != err {
			return record.Record{}, fmt.Errorf("line %d: %w", t.line, err)
		}
		r, err := record.New(id, fields[1])
		if nil != err {
			return record.Record{}, fmt.Errorf("line %d: %w", t.line, err)
		}
		return r, nil
	}

	switch err := t.scanner.Err(); err {
	case nil:
		return record.Record{}, io.EOF
	case bufio.ErrTooLong:
		return record.Record{}, fmt.Errorf("line %d: %w", t.line+1, fault.ErrMalformedRecord)
	default:
		return record.Record{}, fmt.Errorf("%w: %s", fault.ErrSourceUnavailable, err)
	}
}

// Line - number of the last line read
func (t *Text) Line() int {
	return t.line
}

// File - a text file of records
type File struct {
	*Text
	name string
	file *os.File
}

// OpenFile - open a text file for reading
func OpenFile(name string) (*File, error) {
	f, err := os.Open(name)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrSourceUnavailable, err)
	}
	return &File{
		Text: NewText(f),
		name: name,
		file: f,
	}, nil
}

// Name - the file name
func (f *File) Name() string {
	return f.name
}

// Close - release the file
func (f *File) Close() error {
	return f.file.Close()
}
