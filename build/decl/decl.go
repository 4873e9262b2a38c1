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

// Package decl builds trees from declarative YAML literals.
//
// A literal is a mapping with two optional keys: props, whose value is decoded
// into the node's props, and children, a sequence of literals for the node's
// children:
//
//	props: {foo: 10, bar: 20}
//	children:
//	  - props: {foo: 1}
//	  - props: {foo: 100}
//	    children:
//	      - props: {bar: 222}
//
// Every node's props start out as the [build.Builder]'s default, and the
// fields written under props are decoded over it. Fields that are not
// mentioned keep their default values. Fields that do not exist in the props
// type are an error.
//
// Anchors and aliases may be used anywhere in a literal, and an aliased value
// behaves as if it were written out in full at the alias. An alias to a value
// that contains the alias itself is an error.
package decl

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/proptree"
	"github.com/bufbuild/proptree/build"
)

const (
	keyProps    = "props"
	keyChildren = "children"

	// The most aliases a single literal may expand, counting aliases reached
	// through other aliases every time they are reached.
	maxAliases = 10000
)

var (
	// ErrEmpty is returned when parsing a document with no content.
	ErrEmpty = errors.New("empty document")
	// ErrUnknownKey is returned for keys other than props and children.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDuplicateKey is returned for a key that appears twice in one node.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrShape is returned for a YAML value of the wrong kind, such as a
	// node that is not a mapping.
	ErrShape = errors.New("unexpected YAML value")
)

// Error is an error that occurred while building a tree from a literal.
type Error struct {
	// The path to the node the error occurred in, e.g. "root/1/0".
	Path string
	// The position of the offending YAML value, if known; 1-indexed.
	Line, Column int

	Err error
}

// Error implements [error].
func (e *Error) Error() string {
	var buf bytes.Buffer
	buf.WriteString("decl: ")
	if e.Path != "" {
		buf.WriteString(e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&buf, " (%d:%d)", e.Line, e.Column)
		}
		buf.WriteString(": ")
	}
	buf.WriteString(e.Err.Error())
	return buf.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Parse builds the tree described by the YAML literal in text.
func Parse[T any](b build.Builder[T], text []byte) (*proptree.Node[T], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(text, &doc); err != nil {
		return nil, &Error{Err: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, &Error{Err: ErrEmpty}
	}

	p := parser[T]{
		builder:   b,
		expanding: make(map[*yaml.Node]bool),
	}
	return p.node(doc.Content[0], "root")
}

// parser holds the state for a call to [Parse].
type parser[T any] struct {
	builder build.Builder[T]

	// Values whose contents are currently being walked. An alias to one of
	// these is recursive.
	expanding map[*yaml.Node]bool
	aliases   int
}

func (p *parser[T]) node(value *yaml.Node, path string) (*proptree.Node[T], error) {
	value, err := p.resolve(value, path)
	if err != nil {
		return nil, err
	}
	if value.Kind != yaml.MappingNode {
		return nil, p.errorf(value, path, "%w: want a mapping, got %s", ErrShape, kindName(value))
	}

	var props, children *yaml.Node
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, v := value.Content[i], value.Content[i+1]

		var slot **yaml.Node
		switch key.Value {
		case keyProps:
			slot = &props
		case keyChildren:
			slot = &children
		default:
			return nil, p.errorf(key, path, "%w %q", ErrUnknownKey, key.Value)
		}
		if *slot != nil {
			return nil, p.errorf(key, path, "%w %q", ErrDuplicateKey, key.Value)
		}
		*slot = v
	}

	p.expanding[value] = true
	defer delete(p.expanding, value)

	data := p.builder.Props()
	if props != nil && props.ShortTag() != "!!null" {
		expanded, err := p.expand(props, path)
		if err != nil {
			return nil, err
		}
		if err := decodeInto(expanded, &data); err != nil {
			return nil, p.errorf(props, path, "%w", err)
		}
	}
	node := proptree.New(data)

	if children == nil || children.ShortTag() == "!!null" {
		return node, nil
	}
	at := children
	children, err = p.resolve(children, path)
	if err != nil {
		return nil, err
	}
	if children.Kind != yaml.SequenceNode {
		return nil, p.errorf(at, path, "%w: want a sequence of children, got %s", ErrShape, kindName(children))
	}
	p.expanding[children] = true
	defer delete(p.expanding, children)

	for i, child := range children.Content {
		built, err := p.node(child, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		node.Append(built)
	}
	return node, nil
}

// resolve follows value to what it refers to, if it is an alias.
func (p *parser[T]) resolve(value *yaml.Node, path string) (*yaml.Node, error) {
	alias := value
	for value.Kind == yaml.AliasNode {
		p.aliases++
		if p.aliases > maxAliases {
			return nil, p.errorf(alias, path, "%w: more than %d aliases expanded", ErrShape, maxAliases)
		}
		value = value.Alias
		if p.expanding[value] {
			return nil, p.errorf(alias, path, "%w: recursive alias *%s", ErrShape, alias.Value)
		}
	}
	return value, nil
}

// expand returns a copy of value with every alias in it replaced by a copy of
// the value it refers to, so that it can be encoded on its own.
func (p *parser[T]) expand(value *yaml.Node, path string) (*yaml.Node, error) {
	value, err := p.resolve(value, path)
	if err != nil {
		return nil, err
	}

	out := *value
	out.Anchor = ""
	if len(value.Content) == 0 {
		return &out, nil
	}

	p.expanding[value] = true
	defer delete(p.expanding, value)

	out.Content = make([]*yaml.Node, len(value.Content))
	for i, v := range value.Content {
		if out.Content[i], err = p.expand(v, path); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (p *parser[T]) errorf(at *yaml.Node, path, format string, args ...any) error {
	return &Error{
		Path:   path,
		Line:   at.Line,
		Column: at.Column,
		Err:    fmt.Errorf(format, args...),
	}
}

// decodeInto decodes value over the existing contents of *out, rejecting
// fields that *out does not have.
//
// yaml.Node.Decode does not support rejecting unknown fields, so the node is
// re-encoded and run through a strict decoder instead.
func decodeInto[T any](value *yaml.Node, out *T) error {
	text, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(text))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar " + strconv.Quote(n.Value)
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
