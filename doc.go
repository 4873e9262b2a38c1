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

// Package proptree provides a generic tree that stores props at every node,
// along with two traversals for updating those props in place.
//
// # Traversals
//
// [Node.BubbleDown] visits the tree top-down (pre-order): every node is
// visited before its children, so values set on a parent can flow down into
// its subtree. [Node.BubbleUp] visits the tree bottom-up (post-order): every
// node is visited after its children, so values computed on children can be
// rolled up into their parent. [Walk] does both in a single pass.
//
// Visitors are told the [Position] of each node they visit: its index within
// its parent, or [Root] for the node the traversal was started on.
//
// Traversals are iterative rather than recursive, so the depth of a tree is
// limited only by available memory.
//
// # Construction
//
// Trees are usually assembled with package build, which fills in default
// props for every node, or parsed from a YAML literal with package
// build/decl. They can also be put together by hand with [New] and
// [Node.Append]:
//
//	root := proptree.New(Props{Name: "root"}).Append(
//		proptree.New(Props{Name: "a"}),
//		proptree.New(Props{Name: "b"}),
//	)
package proptree
