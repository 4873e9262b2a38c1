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
	"github.com/bufbuild/proptree/internal/ext/slicesx"
)

// Visitor is a callback for a tree traversal.
//
// A single traversal calls the same Visitor for every node, so any state it
// closes over is shared by all of those calls.
type Visitor[T any] func(pos Position, node *Node[T])

// Walk performs a depth-first traversal of the tree rooted at root.
//
// enter is called on each node before any of its descendants, and exit after
// all of them. Either may be nil. With only enter, this is the same as
// [Node.BubbleDown]; with only exit, it is the same as [Node.BubbleUp].
//
// Does nothing if root is nil.
func Walk[T any](root *Node[T], enter, exit Visitor[T]) {
	var w Walker[T]
	w.Walk(root, enter, exit)
}

// Walker is reusable scratch space for [Walk], which needs to allocate a
// stack to track its progress through the tree. This struct allows amortizing
// that cost across many traversals.
//
// The zero Walker is ready to use. A Walker must not be used by more than one
// goroutine at a time.
type Walker[T any] struct {
	stack   []frame[T]
	walking bool
}

// frame is a node on a [Walker]'s stack.
type frame[T any] struct {
	node    *Node[T]
	pos     Position
	entered bool
	next    int // Index of the next child to descend into.
}

// Walk is like [Walk], but re-uses allocated resources stored in w.
//
// Panics if called from inside a visitor of a traversal that w is already
// performing. Nested traversals should use a separate Walker.
func (w *Walker[T]) Walk(root *Node[T], enter, exit Visitor[T]) {
	if root == nil {
		return
	}
	if w.walking {
		panic("proptree: Walker.Walk called reëntrantly")
	}
	w.walking = true
	defer func() {
		clear(w.stack)
		w.stack = w.stack[:0]
		w.walking = false
	}()

	// This is a recursive DFS that has been converted into a loop, so that
	// tree depth is bounded by the heap rather than the goroutine stack. Each
	// frame is looked at once to enter it, once per child to push that child,
	// and once more to pop it and exit it.
	w.stack = append(w.stack, frame[T]{node: root, pos: Root})
	for len(w.stack) > 0 {
		top := slicesx.LastPointer(w.stack)
		if !top.entered {
			top.entered = true
			if enter != nil {
				enter(top.pos, top.node)
			}
		}

		// Children are read only once enter has returned, so that enter can
		// add to them.
		if child, ok := slicesx.Get(top.node.children, top.next); ok {
			pos := At(top.next)
			top.next++
			w.stack = append(w.stack, frame[T]{node: child, pos: pos})
			continue
		}

		done, _ := slicesx.Pop(&w.stack)
		if exit != nil {
			exit(done.pos, done.node)
		}
	}
}

// BubbleDown is like [Node.BubbleDown], but re-uses allocated resources
// stored in w.
func (w *Walker[T]) BubbleDown(root *Node[T], visit Visitor[T]) {
	w.Walk(root, visit, nil)
}

// BubbleUp is like [Node.BubbleUp], but re-uses allocated resources stored
// in w.
func (w *Walker[T]) BubbleUp(root *Node[T], visit Visitor[T]) {
	w.Walk(root, nil, visit)
}
