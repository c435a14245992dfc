// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package verify - fill the indexes from a source and cross check
// them against test records
//
// Each test record is looked up in both indexes and each lookup is
// scored separately, so every test record adds two to the sum of
// matches and mismatches.
package verify
