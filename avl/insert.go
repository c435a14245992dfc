// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/passcheck/record"
)

// Insert - insert a new node into the tree
// returns false if the key was already present, in which case the
// existing secret is kept
func (tree *Tree) Insert(key record.Identifier, secret string) bool {
	added := false
	tree.root, added = insert(key, secret, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
// returns the possibly new root of the sub-tree
func insert(key record.Identifier, secret string, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return &Node{
			key:    key,
			secret: secret,
			height: 1,
		}, true
	}

	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, secret, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, secret, p.right)
	default:
		return p, false
	}

	p.updateHeight()
	balance := p.balance()

	switch {
	case balance > 1 && key < p.left.key:
		// single LL rotation
		return rotateRight(p), added
	case balance < -1 && key > p.right.key:
		// single RR rotation
		return rotateLeft(p), added
	case balance > 1 && key > p.left.key:
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), added
	case balance < -1 && key < p.right.key:
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), added
	}
	return p, added
}

//         y            x
//        / \          / \
//       x   c   →    a   y
//      / \              / \
//     a   b            b   c
func rotateRight(y *Node) *Node {
	x := y.left
	y.left = x.right
	x.right = y

	y.updateHeight()
	x.updateHeight()
	return x
}

//       x                y
//      / \              / \
//     a   y     →      x   c
//        / \          / \
//       b   c        a   b
func rotateLeft(x *Node) *Node {
	y := x.right
	x.right = y.left
	y.left = x

	x.updateHeight()
	y.updateHeight()
	return y
}
