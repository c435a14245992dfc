// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Check - verify ordering, height and balance of every node and
// that the node count is correct
func (tree *Tree) Check() bool {
	n, ok := check(tree.root, nil, nil)
	if !ok {
		return false
	}
	if n != tree.count {
		fmt.Printf("count mismatch: actual: %d  expected: %d\n", n, tree.count)
		return false
	}
	return true
}

// internal: consistency checker, low and high are exclusive bounds
// returns the number of nodes in the sub-tree
func check(p *Node, low *Node, high *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil != low && p.key.Compare(low.key) <= 0 {
		fmt.Printf("fail at node: %v  not above: %v\n", p.key, low.key)
		return 0, false
	}
	if nil != high && p.key.Compare(high.key) >= 0 {
		fmt.Printf("fail at node: %v  not below: %v\n", p.key, high.key)
		return 0, false
	}
	nl, ok := check(p.left, low, p)
	if !ok {
		return 0, false
	}
	nr, ok := check(p.right, p, high)
	if !ok {
		return 0, false
	}
	if h := 1 + max(height(p.left), height(p.right)); h != p.height {
		fmt.Printf("fail at node: %v  height: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	if b := p.balance(); b < -1 || b > 1 {
		fmt.Printf("fail at node: %v  balance: %+d\n", p.key, b)
		return 0, false
	}
	return 1 + nl + nr, true
}
