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

package proptree_test

import (
	"fmt"

	"github.com/bufbuild/proptree"
)

func ExampleNode_BubbleDown() {
	type Props struct{ Foo, Bar int }

	root := proptree.New(Props{Bar: 10}).Append(
		proptree.New(Props{Bar: 20}),
		proptree.New(Props{Bar: 30}),
	)

	root.BubbleDown(func(pos proptree.Position, n *proptree.Node[Props]) {
		n.Props.Bar++
		fmt.Println(pos, n.Props.Bar)
	})

	// Output:
	// root 11
	// 0 21
	// 1 31
}

func ExampleNode_BubbleUp() {
	type Props struct{ Weight, Total int }

	root := proptree.New(Props{Weight: 1}).Append(
		proptree.New(Props{Weight: 2}).Append(
			proptree.New(Props{Weight: 3}),
		),
		proptree.New(Props{Weight: 4}),
	)

	root.BubbleUp(func(pos proptree.Position, n *proptree.Node[Props]) {
		n.Props.Total = n.Props.Weight
		for _, child := range n.Children() {
			n.Props.Total += child.Props.Total
		}
		fmt.Println(pos, n.Props.Total)
	})

	// Output:
	// 0 3
	// 0 5
	// 1 4
	// root 10
}

func ExampleWalk() {
	root := proptree.New("html").Append(
		proptree.New("head"),
		proptree.New("body").Append(proptree.New("p")),
	)

	proptree.Walk(root,
		func(_ proptree.Position, n *proptree.Node[string]) {
			fmt.Printf("<%s>", n.Props)
		},
		func(_ proptree.Position, n *proptree.Node[string]) {
			fmt.Printf("</%s>", n.Props)
		},
	)
	fmt.Println()

	// Output:
	// <html><head></head><body><p></p></body></html>
}
