// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/passcheck/fault"
)

// MaxSecretLength - maximum number of bytes in a secret
const MaxSecretLength = 49

// Identifier - key of a record
type Identifier int

// Record - an immutable identifier and secret pair
type Record struct {
	id     Identifier
	secret string
}

// New - create a record, checking the secret bounds
func New(id Identifier, secret string) (Record, error) {
	if 0 == len(secret) {
		return Record{}, fault.ErrMalformedRecord
	}
	if len(secret) > MaxSecretLength {
		return Record{}, fault.ErrSecretTooLong
	}
	return Record{
		id:     id,
		secret: secret,
	}, nil
}

// ID - the record identifier
func (r Record) ID() Identifier {
	return r.id
}

// Secret - the record secret
func (r Record) Secret() string {
	return r.secret
}

// String - for debug output, the secret is not shown
func (r Record) String() string {
	return fmt.Sprintf("%d:<%d bytes>", r.id, len(r.secret))
}

// Compare - ordering of identifiers: -1, 0, +1
func (id Identifier) Compare(other Identifier) int {
	switch {
	case id < other:
		return -1
	case id > other:
		return +1
	default:
		return 0
	}
}

// String - decimal text of an identifier
func (id Identifier) String() string {
	return strconv.Itoa(int(id))
}

// ParseIdentifier - decode base 10 text
func ParseIdentifier(s string) (Identifier, error) {
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrMalformedRecord
	}
	return Identifier(n), nil
}
