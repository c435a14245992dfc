// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of secrets keyed by record
// identifier
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node keeps the height of its sub-tree, there are no parent
// pointers; the path back to the root is held on the call stack of
// the recursive insert.
//
// The first insert of an identifier wins, inserting the same
// identifier again leaves the stored secret unchanged.  There is no
// delete.
package avl
