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

// Package fold provides common whole-tree updates built on
// [proptree.Node.BubbleUp] and [proptree.Node.BubbleDown].
//
// Each function takes a field selector, which picks out the part of a node's
// props that the function reads and writes.
package fold

import (
	"golang.org/x/exp/constraints" //nolint:exptostd // Number needs Integer and Float, which cmp lacks.

	"github.com/bufbuild/proptree"
)

// Number is a type that [Sum] can add up.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum replaces field on every node with the sum of field over that node's
// subtree, including the node itself.
func Sum[T any, N Number](root *proptree.Node[T], field func(*T) *N) {
	root.BubbleUp(func(_ proptree.Position, node *proptree.Node[T]) {
		total := field(&node.Props)
		for i := range node.Len() {
			// Already a subtree total, since children are visited first.
			*total += *field(&node.Child(i).Props)
		}
	})
}

// Max replaces field on every node with the largest value of field in that
// node's subtree.
func Max[T any, V constraints.Ordered](root *proptree.Node[T], field func(*T) *V) {
	root.BubbleUp(func(_ proptree.Position, node *proptree.Node[T]) {
		best := field(&node.Props)
		for i := range node.Len() {
			*best = max(*best, *field(&node.Child(i).Props))
		}
	})
}

// Inherit copies field from parents into children for which it is the zero
// value. Because parents are updated before their children, a value set high
// in the tree cascades down until some node overrides it.
func Inherit[T any, V comparable](root *proptree.Node[T], field func(*T) *V) {
	var zero V
	root.BubbleDown(func(_ proptree.Position, node *proptree.Node[T]) {
		value := *field(&node.Props)
		for i := range node.Len() {
			if v := field(&node.Child(i).Props); *v == zero {
				*v = value
			}
		}
	})
}
