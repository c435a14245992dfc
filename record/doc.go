// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the (identifier, secret) pair held by the indexes
//
// A secret is opaque data, it is never hashed or inspected; only its
// length is bounded.
package record
