// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package list - a doubly linked list of secrets in insertion order
//
// Appending never checks for an existing identifier, so duplicates
// are kept and a lookup returns the earliest one.
//
// Note: a list is not thread safe.
package list
