// Copyright 2020-2026 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package proptree

import (
	"slices"

	"github.com/bufbuild/proptree/internal/ext/slicesx"
)

// Node is a node in a tree of props.
//
// Each node owns its children: a node can be appended to at most one parent,
// and never to itself or to one of its own descendants. Nodes do not record
// their parent; the only way to reach a node is from a root above it.
//
// A Node is not safe for concurrent use.
type Node[T any] struct {
	// Props is the data stored at this node.
	Props T

	children []*Node[T]
	attached bool // Set once this node has been appended to a parent.
}

// New returns a new node with the given props and no children.
func New[T any](props T) *Node[T] {
	return &Node[T]{Props: props}
}

// Len returns the number of children of n.
func (n *Node[T]) Len() int {
	return len(n.children)
}

// Child returns the child of n at index i, or nil if i is out of range.
func (n *Node[T]) Child(i int) *Node[T] {
	child, _ := slicesx.Get(n.children, i)
	return child
}

// Children returns the children of n, in order.
//
// The returned slice is a copy; reordering it does not affect n.
func (n *Node[T]) Children() []*Node[T] {
	return slices.Clone(n.children)
}

// IsAttached returns whether n has been appended to a parent.
func (n *Node[T]) IsAttached() bool {
	return n.attached
}

// Append appends children to n, in the order given, and returns n.
//
// Panics if any child is nil, already has a parent, or is n itself or an
// ancestor of n. In the latter cases, none of the children after the
// offending one are appended.
func (n *Node[T]) Append(children ...*Node[T]) *Node[T] {
	for _, child := range children {
		switch {
		case child == nil:
			panic("proptree: cannot append a nil node")
		case child.attached:
			panic("proptree: cannot append a node that already has a parent")
		case child == n:
			panic("proptree: cannot append a node to itself")
		case n.attached && child.contains(n):
			// If n is unattached, it is a root, so the only way for child
			// to contain it is to be n.
			panic("proptree: cannot append a node to one of its descendants")
		}

		child.attached = true
		n.children = append(n.children, child)
	}
	return n
}

// BubbleDown performs a pre-order traversal of the tree rooted at n, calling
// visit on every node, parents before their children.
//
// n is visited first, at [Root]; every other node is visited at its index
// within its parent. A node's children are visited in order, each child's
// subtree in full before its next sibling.
//
// The children of a node are read after visit returns for it, so visit may
// modify the node's props, or append children to it, before the traversal
// descends. Modifying any node other than the one being visited, or one of
// its descendants, has undefined results.
func (n *Node[T]) BubbleDown(visit Visitor[T]) {
	Walk(n, visit, nil)
}

// BubbleUp performs a post-order traversal of the tree rooted at n, calling
// visit on every node, children before their parents.
//
// n is visited last, at [Root]; every other node is visited at its index
// within its parent. A node's children are visited in order, each child's
// subtree in full before its next sibling.
//
// Because children are visited first, changes visit makes to a child's props
// are observable when visit is later called on the parent. This makes
// BubbleUp suitable for rolling values up the tree; see package fold for
// examples. Children that visit appends to the node it is visiting are not
// visited. Modifying any node other than the one being visited, or one of
// its descendants, has undefined results.
func (n *Node[T]) BubbleUp(visit Visitor[T]) {
	Walk(n, nil, visit)
}

// contains returns whether needle is a node in the subtree rooted at n.
func (n *Node[T]) contains(needle *Node[T]) bool {
	var found bool
	Walk(n, func(_ Position, node *Node[T]) {
		found = found || node == needle
	}, nil)
	return found
}
