// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/passcheck/record"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// Node - a node in the tree
type Node struct {
	left   *Node             // left sub-tree
	right  *Node             // right sub-tree
	key    record.Identifier // key part for ordering
	secret string            // value part for data storage
	height int               // 1 for a leaf
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() record.Identifier {
	return p.key
}

// Secret - read the secret from a node item
func (p *Node) Secret() string {
	return p.secret
}

// Height - height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// absent sub-trees have zero height
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

func (p *Node) updateHeight() {
	p.height = 1 + max(height(p.left), height(p.right))
}

// positive when the left branch is higher
func (p *Node) balance() int {
	return height(p.left) - height(p.right)
}
