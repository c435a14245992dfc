// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/passcheck/record"
	"github.com/bitmark-inc/passcheck/source"
)

//go:generate mockgen -source=verify.go -destination=mocks/verify.go -package=mocks

// Sequential - an index appending records in arrival order
type Sequential interface {
	Append(record.Identifier, string)
	Find(record.Identifier) (string, bool)
}

// Balanced - an index ordered by identifier
type Balanced interface {
	Insert(record.Identifier, string) bool
	Find(record.Identifier) (string, bool)
}

// Result - totals from a validation
type Result struct {
	Records    int // test records read
	Matches    int
	Mismatches int
}

// String - summary for logging
func (r Result) String() string {
	return fmt.Sprintf("records: %d  matches: %d  mismatches: %d", r.Records, r.Matches, r.Mismatches)
}

// Load - add every record of a source to both indexes
//
// stops at the first source error, records already added are kept;
// returns the number of records read
func Load(log *logger.L, sequential Sequential, balanced Balanced, reader source.Reader) (int, error) {
	n := 0
	duplicates := 0
	for {
		r, err := reader.Next()
		if io.EOF == err {
			break
		}
		if nil != err {
			log.Errorf("load after: %d records  error: %s", n, err)
			return n, err
		}
		n += 1

		sequential.Append(r.ID(), r.Secret())
		if !balanced.Insert(r.ID(), r.Secret()) {
			log.Debugf("duplicate identifier: %d", r.ID())
			duplicates += 1
		}
	}
	log.Infof("loaded: %d records  duplicates: %d", n, duplicates)
	return n, nil
}

// Validate - look up each test record in both indexes
//
// on a source error the totals so far are returned with the error
func Validate(log *logger.L, sequential Sequential, balanced Balanced, reader source.Reader) (Result, error) {
	result := Result{}
	for {
		r, err := reader.Next()
		if io.EOF == err {
			break
		}
		if nil != err {
			log.Errorf("validate after: %s  error: %s", result, err)
			return result, err
		}
		result.Records += 1

		secret, found := sequential.Find(r.ID())
		result.score(found && secret == r.Secret())

		secret, found = balanced.Find(r.ID())
		result.score(found && secret == r.Secret())
	}
	log.Infof("validated: %s", result)
	return result, nil
}

func (r *Result) score(match bool) {
	if match {
		r.Matches += 1
	} else {
		r.Mismatches += 1
	}
}
