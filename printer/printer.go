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

// Package printer renders trees as human-readable outlines, for debugging.
//
// The output is not meant to be parsed back, and its exact format may change.
package printer

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/proptree"
	"github.com/bufbuild/proptree/internal/ext/slicesx"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	rail       = "│   "
	noRail     = "    "
)

// Options configures [Print].
type Options[T any] struct {
	// Formats a node's props. If nil, [fmt.Sprint] is used.
	Format func(T) string

	// The number of spaces between the widest label and the props column. If
	// zero or negative, a gap of one space is used.
	Gap int
}

// line is a single rendered node.
type line struct {
	label, props string
	// Drawn in front of the second and later lines of props, so that the
	// branches below this node stay connected.
	rails string
}

// Print renders the tree rooted at root, one node per line, in pre-order.
//
// Each line starts with a label that shows the node's place in the tree and
// its position within its parent, followed by its formatted props. The props
// of every node start at the same column:
//
//	root      {10 20}
//	├── 0     {1 0}
//	└── 1     {100 0}
//	    └── 0 {0 222}
//
// Props that span several lines are kept in that column, with the branches to
// their left continued alongside them.
//
// Returns the empty string if root is nil.
func Print[T any](opts Options[T], root *proptree.Node[T]) string {
	if root == nil {
		return ""
	}

	format := opts.Format
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	gap := max(opts.Gap, 1)

	var (
		lines    []line
		parents  []*proptree.Node[T]
		prefixes []string // Prefix for the children of the node at the same depth in parents.
	)
	proptree.Walk(root,
		func(pos proptree.Position, node *proptree.Node[T]) {
			label := pos.String()
			var childPrefix string
			if idx, ok := pos.Index(); ok {
				parent, _ := slicesx.Last(parents)
				prefix, _ := slicesx.Last(prefixes)
				if idx == parent.Len()-1 {
					label = prefix + lastBranch + label
					childPrefix = prefix + noRail
				} else {
					label = prefix + branch + label
					childPrefix = prefix + rail
				}
			}

			lines = append(lines, line{label: label, props: format(node.Props), rails: childPrefix})
			parents = append(parents, node)
			prefixes = append(prefixes, childPrefix)
		},
		func(proptree.Position, *proptree.Node[T]) {
			slicesx.Pop(&parents)
			slicesx.Pop(&prefixes)
		},
	)

	var width int
	for _, l := range lines {
		width = max(width, uniseg.StringWidth(l.label))
	}
	column := width + gap

	var out strings.Builder
	for _, l := range lines {
		out.WriteString(l.label)
		if l.props != "" {
			pad := column - uniseg.StringWidth(l.label)
			for i, text := range strings.Split(l.props, "\n") {
				if i > 0 {
					out.WriteByte('\n')
					if text == "" {
						out.WriteString(strings.TrimRight(l.rails, " "))
						continue
					}
					out.WriteString(l.rails)
					pad = column - uniseg.StringWidth(l.rails)
				}
				out.WriteString(strings.Repeat(" ", pad))
				out.WriteString(text)
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}
