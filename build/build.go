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

// Package build assembles [proptree.Node] trees from nested declarations.
//
// Every declared node starts out with a default value for its props, and then
// has the fields that were explicitly declared for it written over that
// default, one by one. For example:
//
//	foo := func(p *Props) *int { return &p.Foo }
//	root := build.Tree(
//		build.Elem(build.Set(foo, 10)).With(
//			build.Elem(build.Set(foo, 1)),
//			build.Elem[Props](),
//		),
//	)
//
// Here each node's props start out as [Default] for Props, and only Foo
// differs, except in the last child, which keeps the default Foo.
package build

import (
	"slices"

	"github.com/bufbuild/proptree"
)

// Defaulter is implemented by props types that have a canonical default
// value other than their zero value.
type Defaulter[T any] interface {
	Default() T
}

// Default returns the default value for T.
//
// If T, or *T, implements [Defaulter], this calls its Default method on a zero
// T; otherwise, it returns the zero T.
func Default[T any]() T {
	var zero T
	if d, ok := any(&zero).(Defaulter[T]); ok {
		return d.Default()
	}
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}
	return zero
}

// Field is an explicitly declared value for some part of a T.
type Field[T any] func(*T)

// Set returns a [Field] that sets the part of T selected by field to value.
//
// field is usually a method expression or a small func literal, such as
//
//	build.Set(func(p *Props) *int { return &p.Size }, 12)
func Set[T, V any](field func(*T) *V, value V) Field[T] {
	return func(props *T) {
		*field(props) = value
	}
}

// Decl is a declared node: a list of field values and a list of declared
// children. The zero Decl declares a node with default props and no children.
//
// Decls are values; [Decl.With] returns a new Decl rather than modifying its
// receiver, so a Decl can be used as a template for several subtrees.
type Decl[T any] struct {
	fields   []Field[T]
	children []Decl[T]
}

// Elem declares a node whose props are the default with fields applied to
// it, in order.
func Elem[T any](fields ...Field[T]) Decl[T] {
	return Decl[T]{fields: fields}
}

// With returns a copy of d with the given children declared after any that
// d already has.
func (d Decl[T]) With(children ...Decl[T]) Decl[T] {
	d.children = append(slices.Clip(d.children), children...)
	return d
}

// Builder builds trees out of [Decl]s.
//
// The zero Builder uses [Default] for default props.
type Builder[T any] struct {
	// If set, called to produce a fresh default value for every node's props.
	Default func() T
}

// Tree builds the tree that root declares, using the zero [Builder].
func Tree[T any](root Decl[T]) *proptree.Node[T] {
	return Builder[T]{}.Build(root)
}

// Props returns the default props with fields applied, in order.
func (b Builder[T]) Props(fields ...Field[T]) T {
	var props T
	if b.Default != nil {
		props = b.Default()
	} else {
		props = Default[T]()
	}

	for _, field := range fields {
		field(&props)
	}
	return props
}

// Build builds the tree that root declares and returns its root node.
//
// Children are appended to their parents in the order they were declared.
func (b Builder[T]) Build(root Decl[T]) *proptree.Node[T] {
	node := proptree.New(b.Props(root.fields...))
	for _, child := range root.children {
		node.Append(b.Build(child))
	}
	return node
}
