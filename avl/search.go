// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/passcheck/record"
)

// Find - secret for a specific key
// second parameter is false if key was not found
func (tree *Tree) Find(key record.Identifier) (string, bool) {
	p := search(key, tree.root)
	if nil == p {
		return "", false
	}
	return p.secret, true
}

// Search - find the node holding a specific key, nil if not present
func (tree *Tree) Search(key record.Identifier) *Node {
	return search(key, tree.root)
}

func search(key record.Identifier, tree *Node) *Node {
	for nil != tree {
		switch tree.key.Compare(key) {
		case +1: // tree.key > key
			tree = tree.left
		case -1: // tree.key < key
			tree = tree.right
		default:
			return tree
		}
	}
	return nil
}
