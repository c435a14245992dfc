// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package source - readers producing records one at a time
//
// Text sources hold one record per line:
//
//   <integer identifier> <secret>
//
// LevelDB sources hold the decimal identifier as the key and the
// secret as the value.
package source
