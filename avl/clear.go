// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clear - release every node, leaving an empty tree
func (tree *Tree) Clear() {
	release(tree.root)
	tree.root = nil
	tree.count = 0
}

// post-order so children are detached before their parent
func release(p *Node) {
	if nil == p {
		return
	}
	release(p.left)
	release(p.right)
	p.left = nil
	p.right = nil
	p.secret = ""
	p.height = 0
}
