// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list

import (
	"github.com/bitmark-inc/passcheck/record"
)

// List - head and tail of the list
type List struct {
	head  *Node
	tail  *Node
	count int
}

// Node - one entry of the list
type Node struct {
	prev   *Node
	next   *Node
	key    record.Identifier
	secret string
}

// New - create an empty list
func New() *List {
	return &List{}
}

// Append - add an entry after the current tail
func (l *List) Append(key record.Identifier, secret string) {
	n := &Node{
		prev:   l.tail,
		next:   nil,
		key:    key,
		secret: secret,
	}
	if nil == l.tail {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count += 1
}

// Find - secret of the first entry with the key
// second parameter is false if key was not found
func (l *List) Find(key record.Identifier) (string, bool) {
	for p := l.head; nil != p; p = p.next {
		if p.key == key {
			return p.secret, true
		}
	}
	return "", false
}

// Count - number of entries, including duplicates
func (l *List) Count() int {
	return l.count
}

// IsEmpty - true if the list has no entries
func (l *List) IsEmpty() bool {
	return nil == l.head
}

// First - earliest entry or nil
func (l *List) First() *Node {
	return l.head
}

// Last - latest entry or nil
func (l *List) Last() *Node {
	return l.tail
}

// Clear - walk the list unlinking every node
func (l *List) Clear() {
	p := l.head
	for nil != p {
		next := p.next
		p.prev = nil
		p.next = nil
		p.secret = ""
		p = next
	}
	l.head = nil
	l.tail = nil
	l.count = 0
}

// Next - following entry or nil
func (p *Node) Next() *Node {
	return p.next
}

// Prev - preceding entry or nil
func (p *Node) Prev() *Node {
	return p.prev
}

// Key - identifier of the entry
func (p *Node) Key() record.Identifier {
	return p.key
}

// Secret - secret of the entry
func (p *Node) Secret() string {
	return p.secret
}
