// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Traverse - visit all nodes in ascending key order, stopping early
// if the callback returns false
func (tree *Tree) Traverse(f func(*Node) bool) {
	traverse(tree.root, f)
}

// returns false if the traversal was stopped
func traverse(p *Node, f func(*Node) bool) bool {
	if nil == p {
		return true
	}
	if !traverse(p.left, f) {
		return false
	}
	if !f(p) {
		return false
	}
	return traverse(p.right, f)
}
