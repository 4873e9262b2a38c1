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
	"fmt"
	"strconv"
)

// Position is the position at which a [Visitor] encounters a node: either its
// 0-based index among its parent's children, or [Root] for the node a
// traversal was started on.
//
// The zero Position is index 0, not [Root].
type Position int

// Root is the position of the node a traversal starts at. A traversal has no
// knowledge of that node's parent, even if it has one, so the root is never
// given an index.
const Root Position = -1

// At returns the position for the child at index i.
//
// Panics if i is negative.
func At(i int) Position {
	if i < 0 {
		panic(fmt.Sprintf("proptree: negative child index %d", i))
	}
	return Position(i)
}

// Index returns the child index for this position, or false if this is
// [Root].
func (p Position) Index() (int, bool) {
	if p.IsRoot() {
		return 0, false
	}
	return int(p), true
}

// IsRoot returns whether this is the position of a traversal's root.
func (p Position) IsRoot() bool {
	return p < 0
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	if p.IsRoot() {
		return "root"
	}
	return strconv.Itoa(int(p))
}
